// Package jwt emite y verifica los tokens de sesión del servicio.
//
// El token es stateless: no hay tabla de sesiones, la validez se decide
// recomputando la firma HMAC contra el secret del servidor. El trade-off
// aceptado es que no hay revocación server-side.
package jwt

import (
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer firma claims {sub: username} con HS256 sobre un secret del servidor.
type Issuer struct {
	Iss       string
	Secret    []byte
	AccessTTL time.Duration // default 1h
}

func NewIssuer(iss string, secret []byte) *Issuer {
	return &Issuer{
		Iss:       iss,
		Secret:    secret,
		AccessTTL: time.Hour,
	}
}

// Issue firma un access token para el username dado. Incluye iat y un jti
// aleatorio, así dos emisiones para el mismo usuario nunca producen el mismo
// token.
func (i *Issuer) Issue(username string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.AccessTTL)

	claims := jwtv5.MapClaims{
		"iss": i.Iss,
		"sub": username,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": exp.Unix(),
		"jti": uuid.NewString(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
