// Command useradd seeds a user into the credential store.
//
//	useradd -username alice -role admin
//
// The password is read from the terminal unless -password is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/infrastructure/db/mongo"
	"github.com/esas/tree-species-api/internal/pkg/config"
)

var errInvalidRole = errors.New("role must be admin or user")

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	username := flag.String("username", "", "login name of the new user")
	password := flag.String("password", "", "password (prompted when empty)")
	role := flag.String("role", domain.RoleUser, "role: admin or user")
	flag.Parse()

	ctx := context.Background()

	var mcfg config.MongoConfig
	if err := envconfig.Process(ctx, &mcfg); err != nil {
		log.Fatal().Err(err).Msg("load mongo config")
	}

	pw := *password
	if pw == "" {
		var err error
		if pw, err = promptPassword(); err != nil {
			log.Fatal().Err(err).Msg("read password")
		}
	}

	user, err := newUser(*username, pw, *role, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid user")
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: mcfg.URI, Database: mcfg.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongo.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes")
	}
	created, err := repo.Create(ctx, user)
	if err != nil {
		log.Fatal().Err(err).Msg("create user")
	}

	log.Info().Str("id", created.ID).Str("username", created.Username).Str("role", created.Role).Msg("user created")
}

// newUser validates the input and hashes the password with bcrypt.
func newUser(username, password, role string, cost int) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return nil, errInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &domain.User{Username: username, PasswordHash: string(hash), Role: role}, nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
