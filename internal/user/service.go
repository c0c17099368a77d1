package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jeffoo713/lightBnB/internal/dberr"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown email or
// a wrong password. The two cases are not distinguished.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles registration and login on top of the repository.
type Service struct {
	repo *Repository
	cost int
}

// NewService creates a user service hashing with bcrypt.DefaultCost.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost}
}

// Register validates nu, hashes its password and stores it.
func (s *Service) Register(ctx context.Context, nu NewUser) (*User, error) {
	nu.Name = strings.TrimSpace(nu.Name)
	nu.Email = strings.TrimSpace(nu.Email)

	if err := dberr.Validate("registering user", nu); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		// max=72 counts runes; bcrypt limits bytes.
		return nil, dberr.New("registering user", dberr.KindInvalid, err)
	}
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	nu.Password = string(hash)

	return s.repo.Add(ctx, nu)
}

// Authenticate returns the user matching email if password is correct.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
