package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"minisignal/internal/apperr"
)

// Authenticator issues and validates bearer tokens. Tokens are self-contained
// HS256 JWTs carrying user_id, email and exp, so validation needs no
// server-side session state.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

func (a *Authenticator) IssueToken(userID int, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     jwt.NewNumericDate(time.Now().Add(a.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken verifies the signature before reading any claim, then checks
// expiry and the required user_id claim. Any failure collapses to
// apperr.ErrInvalidToken.
func (a *Authenticator) ValidateToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return 0, apperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.ErrInvalidToken
	}

	// JSON numbers decode as float64
	uid, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperr.ErrInvalidToken
	}
	return int(uid), nil
}
