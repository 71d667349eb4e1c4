package utils

import (
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// Claims identify a user by the phone number they verified through OTP.
type Claims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

func CreateToken(phone string) (string, error) {
	claims := &Claims{
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// PlanKeyFromPhone derives the plan record key from a phone number the same
// way the mobile app does: strip the +91 country code, prefix with "plan".
func PlanKeyFromPhone(phone string) string {
	digits := strings.TrimPrefix(strings.TrimSpace(phone), "+91")
	if digits == "" {
		return "plan_default"
	}
	return "plan" + digits
}
