package auth

// LoginRequest carries the credentials posted to the token endpoint.
type LoginRequest struct {
	Username string
	Password string
}

// TokenResponse is the bearer credential returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest holds the fields required to create an identity.
type RegisterRequest struct {
	First    string `json:"first" validate:"required"`
	Last     string `json:"last" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
