package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the authenticated identity carried through the request context.
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
