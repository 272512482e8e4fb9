package dto

// LoginRequest is the body of POST /api/auth/login.
// @Description Credentials, with an optional role when the email has several accounts
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginResponse carries either an access token or, when the email belongs to
// several roles and none was chosen, the roles to pick from.
type LoginResponse struct {
	AccessToken string   `json:"access_token,omitempty"`
	TokenType   string   `json:"token_type,omitempty"`
	ExpiresIn   int64    `json:"expires_in,omitempty"`
	Role        string   `json:"role,omitempty"`
	AccountID   string   `json:"account_id,omitempty"`
	DisplayName string   `json:"display_name,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name,omitempty"`
}
