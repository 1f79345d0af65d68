package main

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/service"
)

func TestNewUser_HashesPassword(t *testing.T) {
	u, err := newUser("  alice ", "s3cret", domain.RoleAdmin, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Username != "alice" || u.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "s3cret" {
		t.Fatal("password must be hashed")
	}
	if !service.BcryptVerifier("s3cret", u.PasswordHash) {
		t.Fatal("hash should verify with the login verifier")
	}
}

func TestNewUser_Rejects(t *testing.T) {
	cases := []struct {
		username, password, role string
		want                     error
	}{
		{"", "pw", domain.RoleUser, domain.ErrMissingCredentials},
		{"   ", "pw", domain.RoleUser, domain.ErrMissingCredentials},
		{"bob", "", domain.RoleUser, domain.ErrMissingCredentials},
		{"bob", "pw", "superuser", errInvalidRole},
	}
	for _, tc := range cases {
		if _, err := newUser(tc.username, tc.password, tc.role, bcrypt.MinCost); !errors.Is(err, tc.want) {
			t.Errorf("%+v: expected %v, got %v", tc, tc.want, err)
		}
	}
}
