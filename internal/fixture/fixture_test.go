package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistry-gallery/artistry/internal/domain"
)

func TestLoadBundledFixtures(t *testing.T) {
	fx, err := Load("../../data")
	require.NoError(t, err)

	require.NotEmpty(t, fx.Accounts)
	for _, a := range fx.Accounts {
		assert.True(t, a.Role.Valid(), "account %d has unknown role %q", a.ID, a.Role)
		assert.NotEmpty(t, a.Email)
	}

	require.NotEmpty(t, fx.Products)
	for _, p := range fx.Products {
		assert.True(t, p.Category.Valid(), "product %d has unknown category %q", p.ID, p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Discount, 0.0)
		assert.LessOrEqual(t, p.Discount, 100.0)
	}

	// fixture order dates are loose strings in assorted formats; all of the
	// bundled ones must parse
	require.NotEmpty(t, fx.Orders)
	for _, o := range fx.Orders {
		assert.False(t, o.PlacedAt.IsZero(), "order %s date %q did not parse", o.OrderID, o.Date)
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadRejectsMalformedFixture(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, UsersFile), []byte("{broken"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestOrderTotalsMatchFixtureShape(t *testing.T) {
	fx, err := Load("../../data")
	require.NoError(t, err)
	for _, o := range fx.Orders {
		assert.NotEmpty(t, o.Items, "order %s has no line items", o.OrderID)
		switch o.Status {
		case domain.OrderPending, domain.OrderCompleted, domain.OrderCancelled:
		default:
			t.Errorf("order %s has unknown status %q", o.OrderID, o.Status)
		}
	}
}
