package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistry-gallery/artistry/internal/domain"
)

func testAccounts() []domain.Account {
	return []domain.Account{
		{ID: 1, Name: "Admin", Email: "admin@artgallery.com", Password: "admin123", Role: domain.RoleAdmin},
		{ID: 2, Name: "Elena", Email: "elena@artgallery.com", Password: "artist123", Role: domain.RoleArtist},
		{ID: 3, Name: "Sam", Email: "sam@example.com", Password: "buyer123", Role: domain.RoleBuyer},
		// duplicate email and password: the fixture does not guard against
		// this, first match must win
		{ID: 4, Name: "Shadow", Email: "admin@artgallery.com", Password: "admin123", Role: domain.RoleBuyer},
	}
}

func TestAuthenticate(t *testing.T) {
	s := NewStore(testAccounts())

	acct, err := s.Authenticate("admin@artgallery.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acct.ID)
	assert.Equal(t, domain.RoleAdmin, acct.Role)
}

func TestAuthenticateInvalid(t *testing.T) {
	s := NewStore(testAccounts())

	_, err := s.Authenticate("admin@artgallery.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate("nobody@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// matching is case-sensitive on both fields
	_, err = s.Authenticate("Admin@artgallery.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate("admin@artgallery.com", "ADMIN123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateFirstMatchWins(t *testing.T) {
	s := NewStore(testAccounts())
	acct, err := s.Authenticate("admin@artgallery.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acct.ID)
	assert.Equal(t, domain.RoleAdmin, acct.Role)
}

func TestByIDAndArtists(t *testing.T) {
	s := NewStore(testAccounts())

	assert.Equal(t, "Elena", s.ByID(2).Name)
	assert.Nil(t, s.ByID(99))

	artists := s.Artists()
	require.Len(t, artists, 1)
	assert.Equal(t, int64(2), artists[0].ID)
}
