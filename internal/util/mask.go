// Package util: helpers chicos que no pertenecen a ningún dominio.
package util

import (
	"net/url"
	"strings"
)

// MaskSecret deja visibles los primeros 2 caracteres. Para loggear que un
// secret está presente sin filtrarlo.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "***"
	}
	return s[:2] + strings.Repeat("*", 6)
}

// MaskDSN reemplaza el password de una URL de conexión. Si no parsea como
// URL, enmascara todo.
func MaskDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return "***"
	}
	if u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	return u.String()
}
