package util

import "testing"

func TestMaskSecret(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"abc":           "***",
		"supersecreto1": "su******",
	}
	for in, want := range cases {
		if got := MaskSecret(in); got != want {
			t.Errorf("MaskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskDSN(t *testing.T) {
	got := MaskDSN("postgres://app:hunter2@db:5432/taskjohn?sslmode=disable")
	want := "postgres://app:xxxxx@db:5432/taskjohn?sslmode=disable"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if MaskDSN("not a url") != "***" {
		t.Errorf("string sin forma de URL debe quedar opaco")
	}
	if MaskDSN("") != "" {
		t.Errorf("vacío queda vacío")
	}
}
