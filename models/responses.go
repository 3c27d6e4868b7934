package models

// MessageResponse is the body of endpoints that only acknowledge a request,
// such as the forgot-password form.
type MessageResponse struct {
	Message string `json:"message"`
}

// DashboardResponse is what GET /dashboard returns: the caller's own record
// plus the form used to edit it.
type DashboardResponse struct {
	User User           `json:"user"`
	Form FormDescriptor `json:"form"`

	// VanityClaimable is true until the user owns a vanity.
	VanityClaimable bool `json:"vanity_claimable"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
