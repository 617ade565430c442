// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Role is optional and defaults to "aluno".
type SignupReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// SignupRes is returned after a successful registration.
type SignupRes struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
