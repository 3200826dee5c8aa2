// Package auth is the storefront's login gate. It is a placeholder by
// contract: one configured credential pair grants the admin role, and any
// other non-empty email/password is accepted as an ordinary shopper. There
// is no user database and nothing to register.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	adminUserID = "u_admin"
	sessionTTL  = 12 * time.Hour
)

var ErrMissingCredentials = errors.New("email/password required")

type Session struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

type Gate struct {
	adminEmail string
	adminHash  []byte
	jwt        *TokenMaker
}

// NewGate hashes the configured admin password up front so login compares
// against a hash, never the plaintext.
func NewGate(adminEmail, adminPassword string, jwt *TokenMaker) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		adminHash:  hash,
		jwt:        jwt,
	}, nil
}

// Login issues a session for any non-empty pair. The admin pair gets the
// admin role; a wrong password for the admin email falls through to an
// ordinary shopper session rather than failing.
func (g *Gate) Login(email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return Session{}, ErrMissingCredentials
	}

	if email == g.adminEmail && bcrypt.CompareHashAndPassword(g.adminHash, []byte(password)) == nil {
		tok, err := g.jwt.New(adminUserID, email, RoleAdmin, sessionTTL)
		if err != nil {
			return Session{}, err
		}
		return Session{AccessToken: tok, Role: RoleAdmin}, nil
	}

	tok, err := g.jwt.New("u_"+uuid.NewString(), email, RoleUser, sessionTTL)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: tok, Role: RoleUser}, nil
}
