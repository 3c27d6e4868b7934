package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/crrd/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldVanity targets the optional vanity slug of a registration.
	FieldVanity = "vanity"

	// FieldVanityRequired targets a vanity slug that must be present
	// (a claim or a public lookup).
	FieldVanityRequired = "vanity_required"

	// FieldProfile targets the editable profile attributes.
	FieldProfile = "profile"
)

// Length limits for profile attributes, counted in runes.
const (
	MaxEmailLength       = 254
	MaxPasswordBytes     = 72
	MaxDisplayNameLength = 64
	MaxBioLength         = 1000
	MaxHandleLength      = 64
	MaxURLLength         = 2048
)

var vanityPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)

// ReservedVanities are path segments served by fixed routes. A profile with
// one of these names would be unreachable.
var ReservedVanities = []string{
	"login", "register", "dashboard", "logout",
	"forgot-password", "reset-password",
	"metrics", "healthz", "version", "static", "api",
}

var allowedCardSizes = []string{
	"",
	models.CardSizeSmall,
	models.CardSizeMedium,
	models.CardSizeLarge,
}

// UserValidator validates registration credentials, vanity slugs and
// profile edits.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation by the dynamic type of obj.
//
// Supported types:
//   - models.Credentials / *models.Credentials (email, password, optional vanity)
//   - models.Profile / *models.Profile
//   - models.DashboardUpdate / *models.DashboardUpdate
//   - string, validated as a required vanity slug
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Profile:
		return v.validateProfile(ctx, value)
	case *models.Profile:
		return v.validateProfile(ctx, *value)

	case models.DashboardUpdate:
		return v.validateDashboardUpdate(ctx, value)
	case *models.DashboardUpdate:
		return v.validateDashboardUpdate(ctx, *value)

	case string:
		return validateVanity(value, true)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldVanity}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(creds.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(creds.Password); err != nil {
				return err
			}
		case FieldVanity:
			if err := validateVanity(creds.Vanity, false); err != nil {
				return err
			}
		case FieldVanityRequired:
			if err := validateVanity(creds.Vanity, true); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *UserValidator) validateDashboardUpdate(ctx context.Context, update models.DashboardUpdate) error {
	if err := v.validateProfile(ctx, update.Profile); err != nil {
		return err
	}

	return validateVanity(update.Vanity, false)
}

func (v *UserValidator) validateProfile(ctx context.Context, p models.Profile) error {
	limits := []struct {
		value string
		max   int
	}{
		{p.DisplayName, MaxDisplayNameLength},
		{p.Bio, MaxBioLength},
		{p.Twitter, MaxHandleLength},
		{p.GitHub, MaxHandleLength},
		{p.AvatarURL, MaxURLLength},
		{p.Website, MaxURLLength},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return ErrFieldTooLong
		}
	}

	if !slices.Contains(allowedCardSizes, p.CardSize) {
		return ErrInvalidCardSize
	}

	for _, raw := range []string{p.AvatarURL, p.Website} {
		if err := validateOptionalURL(raw); err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > MaxEmailLength || strings.ContainsAny(email, " \t\r\n") {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	return nil
}

// validateVanity expects an already normalised slug.
func validateVanity(vanity string, required bool) error {
	if vanity == "" {
		if required {
			return ErrEmptyVanity
		}
		return nil
	}

	if !vanityPattern.MatchString(vanity) {
		return ErrInvalidVanity
	}
	if slices.Contains(ReservedVanities, vanity) {
		return ErrReservedVanity
	}

	return nil
}

func validateOptionalURL(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
