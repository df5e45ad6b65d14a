package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}
