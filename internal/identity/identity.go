// Package identity resolves credentials against the fixture account list.
// There is no registration, no hashing and no mutation: the fixture is the
// whole user store, and passwords are compared in the clear by design of the
// demo data set.
package identity

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/artistry-gallery/artistry/internal/domain"
)

// ErrInvalidCredentials is returned when no fixture account matches the
// supplied email and password exactly.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Store holds the fixture accounts.
type Store struct {
	accounts []domain.Account
}

func NewStore(accounts []domain.Account) *Store {
	return &Store{accounts: accounts}
}

// Authenticate performs a linear first-match lookup. Matching is exact and
// case-sensitive; duplicate emails in the fixture resolve to the first entry.
func (s *Store) Authenticate(email, password string) (*domain.Account, error) {
	for i := range s.accounts {
		a := &s.accounts[i]
		if a.Email == email && a.Password == password {
			out := *a
			return &out, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// ByID returns the account with the given ID, or nil.
func (s *Store) ByID(id int64) *domain.Account {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			out := s.accounts[i]
			return &out
		}
	}
	return nil
}

// Artists returns all fixture accounts with the artist role.
func (s *Store) Artists() []domain.Account {
	return lo.Filter(s.accounts, func(a domain.Account, _ int) bool {
		return a.Role == domain.RoleArtist
	})
}

// Count returns the number of fixture accounts.
func (s *Store) Count() int {
	return len(s.accounts)
}
