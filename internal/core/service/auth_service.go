package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

const (
	// TokenTTL is the fixed lifetime of an issued token.
	TokenTTL = time.Hour
	// BearerPrefix precedes the token in login responses and Authorization headers.
	BearerPrefix = "Bearer "
)

// ErrMissingSecret is returned when the service is built without a signing
// secret. Without one no token can be issued or verified.
var ErrMissingSecret = errors.New("auth: signing secret is not configured")

var signingMethod = jwt.SigningMethodHS256

// PasswordVerifier reports whether plain matches a stored one-way hash.
type PasswordVerifier func(plain, hash string) bool

// BcryptVerifier checks plain against a bcrypt hash.
func BcryptVerifier(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithPasswordVerifier replaces the bcrypt comparison.
func WithPasswordVerifier(v PasswordVerifier) AuthOption {
	return func(s *AuthService) { s.verify = v }
}

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// AuthService implements login and token verification.
type AuthService struct {
	users  ports.UserRepository
	secret []byte
	verify PasswordVerifier
	now    func() time.Time
}

// tokenClaims is the signed payload: {id, username, iat, exp}.
type tokenClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewAuthService(users ports.UserRepository, secret string, opts ...AuthOption) (*AuthService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	s := &AuthService{
		users:  users,
		secret: []byte(secret),
		verify: BcryptVerifier,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Login verifies username and password and returns a bearer token valid for
// TokenTTL.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", domain.ErrMissingCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("login: find user: %w", err)
	}

	if !s.verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidPassword
	}

	token, err := s.sign(user)
	if err != nil {
		return "", fmt.Errorf("login: sign token: %w", err)
	}
	return BearerPrefix + token, nil
}

// Authenticate validates the signature, algorithm, expiry and payload schema
// of token, then re-reads its user so that deleted accounts stop working
// immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrInvalidOrMissingToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidOrMissingToken
	}

	id, ok := decodePayload(claims)
	if !ok {
		return nil, domain.ErrInvalidOrMissingToken
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("authenticate: find user: %w", err)
	}
	return domain.NewPrincipal(user), nil
}

func (s *AuthService) sign(user *domain.User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
}

func (s *AuthService) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != signingMethod.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}

// decodePayload accepts only the exact issued schema: string id and username,
// whole-second iat and exp, nothing else.
func decodePayload(claims jwt.MapClaims) (string, bool) {
	if len(claims) != 4 {
		return "", false
	}
	id, okID := claims["id"].(string)
	username, okName := claims["username"].(string)
	okIat := isUnixSeconds(claims["iat"])
	okExp := isUnixSeconds(claims["exp"])
	if !okID || !okName || !okIat || !okExp {
		return "", false
	}
	if id == "" || username == "" {
		return "", false
	}
	return id, true
}

func isUnixSeconds(v any) bool {
	f, ok := v.(float64)
	return ok && f == math.Trunc(f)
}
