package types

import "github.com/golang-jwt/jwt/v5"

// Claims carried by admin API tokens.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
