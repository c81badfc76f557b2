package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is display-only metadata peeked from the primary token when it
// happens to be a JWT. Nothing is verified here: token validity is only
// ever discovered when a backend call rejects it.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	IsJWT     bool
}

// PrimaryTokenInfo decodes the primary token's claims without signature
// verification, for the settings screen. Opaque (non-JWT) tokens yield a
// zero TokenInfo with IsJWT false.
func (s *Session) PrimaryTokenInfo() TokenInfo {
	token := s.PrimaryToken()
	if token == "" {
		return TokenInfo{}
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{IsJWT: true}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info
}
