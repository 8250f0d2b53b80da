package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the parsed content of an access token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
