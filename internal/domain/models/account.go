package models

type LoginRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AccountID   string `json:"account_id"`
	UserID      string `json:"user_id"`
}

// CurrentUser is the identity resolved from a bearer token.
type CurrentUser struct {
	AccountID string  `json:"account_id"`
	UserID    string  `json:"user_id"`
	Email     *string `json:"email"`
}
