package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/crrd/internal/app"
	"github.com/MKhiriev/crrd/internal/service"
	"github.com/MKhiriev/crrd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboard_WithoutSessionRedirects(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "view", method: http.MethodGet, path: "/dashboard"},
		{name: "update", method: http.MethodPost, path: "/dashboard"},
		{name: "avatar upload", method: http.MethodGet, path: "/dashboard/avatar-upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// strict mocks: any profile service call fails the test
			h, _ := newTestHandler(t)

			req := formRequest(tt.method, tt.path, url.Values{"display_name": {"Mallory"}})
			rec := serve(h, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestDashboard_ForgedCookieRedirects(t *testing.T) {
	h, m := newTestHandler(t)

	m.session.EXPECT().ResumeSession(gomock.Any(), "forged").Return(models.Session{}, service.ErrSessionNotFound)

	rec := serve(h, addSessionCookie(formRequest(http.MethodPost, "/dashboard", url.Values{"bio": {"x"}}), "forged"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Less(t, responseCookie(t, rec, testCookieName).MaxAge, 0)
}

func TestShowDashboard(t *testing.T) {
	h, m := newTestHandler(t)

	m.withLiveSession("sid.sig", models.Session{ID: "sid", UserID: 7})
	m.profile.EXPECT().GetOwnProfile(gomock.Any(), int64(7)).Return(models.User{
		UserID:       7,
		Email:        "a@x.io",
		PasswordHash: "$2a$10$secret",
		Profile:      models.Profile{DisplayName: "Alice"},
	}, nil)

	rec := serve(h, addSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "sid.sig"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	var body models.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a@x.io", body.User.Email)
	assert.Equal(t, "Alice", body.User.Profile.DisplayName)
	assert.True(t, body.VanityClaimable)
	assert.Equal(t, "vanity", body.Form.Fields[0].Name)
}

func TestShowDashboard_VanityAlreadyClaimed(t *testing.T) {
	h, m := newTestHandler(t)

	m.withLiveSession("sid.sig", models.Session{ID: "sid", UserID: 7, Vanity: "alice"})
	m.profile.EXPECT().GetOwnProfile(gomock.Any(), int64(7)).Return(models.User{UserID: 7, Vanity: "alice"}, nil)

	rec := serve(h, addSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "sid.sig"))

	var body models.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.VanityClaimable)
	for _, f := range body.Form.Fields {
		assert.NotEqual(t, "vanity", f.Name)
	}
}

func TestUpdateDashboard_ClaimsVanityAndRefreshesSession(t *testing.T) {
	h, m := newTestHandler(t)

	session := models.Session{ID: "sid", UserID: 7}
	m.withLiveSession("sid.sig", session)

	want := models.DashboardUpdate{
		Profile: models.Profile{
			DisplayName: "Alice",
			Bio:         "hi",
			CardSize:    models.CardSizeLarge,
			GitHub:      "alice",
			Website:     "https://alice.dev",
		},
		Vanity: "alice",
	}
	m.profile.EXPECT().UpdateDashboard(gomock.Any(), int64(7), want).
		Return(models.User{UserID: 7, Vanity: "alice", Profile: want.Profile}, nil)
	m.session.EXPECT().RefreshVanity(gomock.Any(), session, "alice").
		Return(models.Session{ID: "sid", UserID: 7, Vanity: "alice"}, nil)

	req := addSessionCookie(formRequest(http.MethodPost, "/dashboard", url.Values{
		"display_name": {"Alice"},
		"bio":          {"hi"},
		"card_size":    {"large"},
		"github":       {"alice"},
		"website":      {"https://alice.dev"},
		"vanity":       {"alice"},
	}), "sid.sig")

	rec := serve(h, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestUpdateDashboard_IgnoresForeignUserID(t *testing.T) {
	h, m := newTestHandler(t)

	m.withLiveSession("sid.sig", models.Session{ID: "sid", UserID: 7, Vanity: "alice"})
	m.profile.EXPECT().UpdateDashboard(gomock.Any(), int64(7), gomock.Any()).
		Return(models.User{UserID: 7, Vanity: "alice"}, nil)

	req := addSessionCookie(formRequest(http.MethodPost, "/dashboard", url.Values{
		"user_id":      {"8"},
		"id":           {"8"},
		"display_name": {"pwned"},
	}), "sid.sig")

	rec := serve(h, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestUpdateDashboard_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "vanity taken",
			serviceErr: service.ErrVanityTaken,
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgVanityTaken,
		},
		{
			name:       "already claimed",
			serviceErr: service.ErrVanityAlreadyClaimed,
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgVanityAlreadyClaimed,
		},
		{
			name:       "invalid field",
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			m.withLiveSession("sid.sig", models.Session{ID: "sid", UserID: 7})
			m.profile.EXPECT().UpdateDashboard(gomock.Any(), int64(7), gomock.Any()).Return(models.User{}, tt.serviceErr)

			req := addSessionCookie(formRequest(http.MethodPost, "/dashboard", url.Values{"vanity": {"bob"}}), "sid.sig")
			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestAvatarUpload(t *testing.T) {
	h, m := newTestHandler(t)

	m.withLiveSession("sid.sig", models.Session{ID: "sid", UserID: 7})
	m.profile.EXPECT().CreateAvatarUpload(gomock.Any(), int64(7)).Return(models.AvatarUpload{
		UploadURL: "https://s3.example/avatars/7/abc?X-Amz-Signature=x",
		PublicURL: "https://cdn.example/avatars/7/abc",
		ExpiresAt: testNow.Add(15 * time.Minute),
	}, nil)

	rec := serve(h, addSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard/avatar-upload", nil), "sid.sig"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AvatarUpload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://cdn.example/avatars/7/abc", body.PublicURL)
}

func TestAvatarUpload_Disabled(t *testing.T) {
	h, m := newTestHandler(t)

	m.withLiveSession("sid.sig", models.Session{ID: "sid", UserID: 7})
	m.profile.EXPECT().CreateAvatarUpload(gomock.Any(), int64(7)).Return(models.AvatarUpload{}, service.ErrAvatarsDisabled)

	rec := serve(h, addSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard/avatar-upload", nil), "sid.sig"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgAvatarsDisabled, strings.TrimSpace(rec.Body.String()))
}
