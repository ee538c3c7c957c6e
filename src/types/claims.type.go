package types

import "github.com/golang-jwt/jwt/v4"

// Claims carried by the session bearer token. Subject is the user id that
// scopes the booking draft.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UID      string `json:"uid"`
	jwt.RegisteredClaims
}
