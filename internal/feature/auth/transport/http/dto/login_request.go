package dto

import "time"

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRes carries the bearer token issued on a successful login.
type LoginRes struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// MessageRes is the minimal response body shared by every endpoint.
type MessageRes struct {
	Message string `json:"message"`
}

// UserItem is the public projection of a user, without the password hash.
type UserItem struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MeRes is the response body for /me.
type MeRes struct {
	Message string   `json:"message"`
	User    UserItem `json:"user"`
}
