package dto

// ── Auth (web) ──

// LoginRequest is the web login payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the web registration payload. Name and Role are
// optional: they default to the local part of the email and "student".
type RegisterRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// AuthUser is the user fragment of an auth response.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse carries a bearer token and the authenticated user.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// CheckDatabaseResponse reports whether any user exists yet, so the
// client can route to the initial-setup screen.
type CheckDatabaseResponse struct {
	Status   string `json:"status"`
	HasUsers bool   `json:"hasUsers"`
}

// ── Auth (mobile) ──

// MobileLoginRequest is the mobile login payload (static accounts).
type MobileLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MobileUser is the user fragment of a mobile auth response.
type MobileUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MobileAuthResponse carries a bearer token and the mobile account.
type MobileAuthResponse struct {
	Token string     `json:"token"`
	User  MobileUser `json:"user"`
}

// QRLoginRequest carries an encrypted QR payload for decoding.
type QRLoginRequest struct {
	Data string `json:"data" binding:"required"`
}
