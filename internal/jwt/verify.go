package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid_token")

// Claims son los claims que el resto del servicio consume de un token válido.
type Claims struct {
	Username string
	IssuedAt time.Time
}

// Verify valida firma (HS256, comparación HMAC en tiempo constante dentro de
// la lib), método permitido, iss y exp/nbf con una pequeña tolerancia.
// Cualquier falla, incluido un payload malformado o un byte alterado, es
// ErrInvalidToken: el caller no distingue causas.
func (i *Issuer) Verify(token string) (*Claims, error) {
	tok, err := jwtv5.Parse(token,
		func(t *jwtv5.Token) (any, error) { return i.Secret, nil },
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithIssuer(i.Iss),
		jwtv5.WithLeeway(30*time.Second),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	out := &Claims{Username: sub}
	if iatf, ok := mc["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iatf), 0).UTC()
	}
	return out, nil
}
