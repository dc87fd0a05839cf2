package jwt_test

import (
	"strings"
	"testing"
	"time"

	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := jwtx.NewIssuer("taskjohn-test", testSecret)

	token, exp, err := iss.Issue("alice")
	if err != nil {
		t.Fatalf("Issue err: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatal("exp not in the future")
	}

	claims, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q", claims.Username)
	}
	if claims.IssuedAt.IsZero() {
		t.Fatal("iat missing")
	}
}

func TestIssue_TokensDiffer(t *testing.T) {
	iss := jwtx.NewIssuer("taskjohn-test", testSecret)

	a, _, err := iss.Issue("alice")
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := iss.Issue("alice")
	if err != nil {
		t.Fatal(err)
	}
	// jti aleatorio: dos emisiones para el mismo usuario nunca colisionan.
	if a == b {
		t.Fatal("two issued tokens are identical")
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	iss := jwtx.NewIssuer("taskjohn-test", testSecret)

	token, _, err := iss.Issue("alice")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}

	// Alterar un byte en el medio de cada segmento (header, payload, firma).
	for seg := 0; seg < 3; seg++ {
		mod := make([]string, 3)
		copy(mod, parts)
		s := []byte(mod[seg])
		mid := len(s) / 2
		if s[mid] == 'A' {
			s[mid] = 'B'
		} else {
			s[mid] = 'A'
		}
		mod[seg] = string(s)
		corrupted := strings.Join(mod, ".")
		if corrupted == token {
			t.Fatal("corruption produced identical token")
		}
		if _, err := iss.Verify(corrupted); err == nil {
			t.Fatalf("tampered token accepted (segment %d)", seg)
		}
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	iss := jwtx.NewIssuer("taskjohn-test", testSecret)
	other := jwtx.NewIssuer("taskjohn-test", []byte("ffffffffffffffffffffffffffffffff"))

	token, _, err := iss.Issue("alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Fatal("token verified with a different secret")
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	a := jwtx.NewIssuer("service-a", testSecret)
	b := jwtx.NewIssuer("service-b", testSecret)

	token, _, err := a.Issue("alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Verify(token); err == nil {
		t.Fatal("token with foreign iss accepted")
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := jwtx.NewIssuer("taskjohn-test", testSecret)
	// TTL negativo mayor que el leeway de verificación
	iss.AccessTTL = -2 * time.Minute

	token, _, err := iss.Issue("alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Verify(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestVerify_Garbage(t *testing.T) {
	iss := jwtx.NewIssuer("taskjohn-test", testSecret)
	for _, tok := range []string{"", "not-a-jwt", strings.Repeat("x.", 10)} {
		if _, err := iss.Verify(tok); err == nil {
			t.Fatalf("garbage token accepted: %q", tok)
		}
	}
}
