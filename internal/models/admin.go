package models

import "github.com/golang-jwt/jwt/v4"

// AdminActionRequest defines the request body for admin operations that
// target a single user (verify, ban, unban, promote).
type AdminActionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims,
// used to authenticate the admin HTTP surface.
type JwtCustomClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}
