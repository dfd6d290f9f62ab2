// Package tokenx reads display information out of bearer tokens.
//
// Tokens are issued and verified by the server; the client cannot check a
// signature and does not try to. Inspect only decodes the claims of a JWT so
// the CLI can show who the token belongs to.
package tokenx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned for tokens that are not a decodable JWT.
var ErrNotJWT = errors.New("token is not a JWT")

// Info holds the claims worth showing. Zero fields are absent claims.
type Info struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes the registered claims of token without verifying it.
func Inspect(token string) (Info, error) {
	var claims jwt.RegisteredClaims

	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Info{}, errors.Join(ErrNotJWT, err)
	}

	info := Info{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
