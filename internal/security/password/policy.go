package password

import "unicode"

// Policy valida credenciales en el borde HTTP, antes de llegar al gateway.
type Policy struct {
	MinUsername int
	MaxUsername int
	MinPassword int
	MaxPassword int
}

// DefaultPolicy: username 4-20, password 8-32 con mayúscula, minúscula y
// dígito o símbolo.
var DefaultPolicy = Policy{MinUsername: 4, MaxUsername: 20, MinPassword: 8, MaxPassword: 32}

func (p Policy) ValidateUsername(s string) (ok bool, reasons []string) {
	n := len([]rune(s))
	if n < p.MinUsername {
		reasons = append(reasons, "username_too_short")
	}
	if n > p.MaxUsername {
		reasons = append(reasons, "username_too_long")
	}
	return len(reasons) == 0, reasons
}

func (p Policy) ValidatePassword(s string) (ok bool, reasons []string) {
	n := len([]rune(s))
	if n < p.MinPassword {
		reasons = append(reasons, "password_too_short")
	}
	if n > p.MaxPassword {
		reasons = append(reasons, "password_too_long")
	}
	var hasU, hasL, hasD, hasS bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasU = true
		case unicode.IsLower(r):
			hasL = true
		case unicode.IsDigit(r):
			hasD = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasS = true
		}
	}
	if !hasU {
		reasons = append(reasons, "missing_upper")
	}
	if !hasL {
		reasons = append(reasons, "missing_lower")
	}
	if !hasD && !hasS {
		reasons = append(reasons, "missing_digit_or_symbol")
	}
	return len(reasons) == 0, reasons
}
