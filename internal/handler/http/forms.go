package http

import (
	"net/http"

	"github.com/MKhiriev/crrd/models"
)

var (
	registerForm = models.FormDescriptor{
		Form:   "register",
		Method: http.MethodPost,
		Action: "/register",
		Fields: []models.FormField{
			{Name: "email", Type: models.FieldTypeEmail, Required: true},
			{Name: "password", Type: models.FieldTypePassword, Required: true},
			{Name: "vanity", Type: models.FieldTypeText},
		},
	}

	loginForm = models.FormDescriptor{
		Form:   "login",
		Method: http.MethodPost,
		Action: "/login",
		Fields: []models.FormField{
			{Name: "email", Type: models.FieldTypeEmail, Required: true},
			{Name: "password", Type: models.FieldTypePassword, Required: true},
		},
	}

	forgotPasswordForm = models.FormDescriptor{
		Form:   "forgot-password",
		Method: http.MethodPost,
		Action: "/forgot-password",
		Fields: []models.FormField{
			{Name: "email", Type: models.FieldTypeEmail, Required: true},
		},
	}

	profileFields = []models.FormField{
		{Name: "display_name", Type: models.FieldTypeText},
		{Name: "avatar_url", Type: models.FieldTypeURL},
		{Name: "bio", Type: models.FieldTypeTextArea},
		{Name: "card_size", Type: models.FieldTypeSelect},
		{Name: "twitter", Type: models.FieldTypeText},
		{Name: "github", Type: models.FieldTypeText},
		{Name: "website", Type: models.FieldTypeURL},
	}
)

func resetPasswordForm(token string) models.FormDescriptor {
	return models.FormDescriptor{
		Form:   "reset-password",
		Method: http.MethodPost,
		Action: "/reset-password/" + token,
		Fields: []models.FormField{
			{Name: "password", Type: models.FieldTypePassword, Required: true},
		},
	}
}

// dashboardForm lists the profile fields, plus the vanity field while the
// user can still claim one.
func dashboardForm(vanityClaimable bool) models.FormDescriptor {
	fields := make([]models.FormField, 0, len(profileFields)+1)
	if vanityClaimable {
		fields = append(fields, models.FormField{Name: "vanity", Type: models.FieldTypeText})
	}
	fields = append(fields, profileFields...)

	return models.FormDescriptor{
		Form:   "dashboard",
		Method: http.MethodPost,
		Action: "/dashboard",
		Fields: fields,
	}
}

func showForm(form models.FormDescriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, form, http.StatusOK)
	}
}
