package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistry-gallery/artistry/internal/catalog"
	"github.com/artistry-gallery/artistry/internal/domain"
)

var elena = domain.Account{ID: 2, Name: "Elena Vasquez", Role: domain.RoleArtist}

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{ID: 101, Title: "Sunset", Category: domain.CategoryPaintings, ArtistID: 2, ArtistName: "Elena Vasquez", Price: 12000, Discount: 10},
		{ID: 103, Title: "Neon Tide", Category: domain.CategoryDigitalArt, ArtistID: 3, ArtistName: "Marcus Chen", Price: 4000, Discount: 25},
	})
}

func TestOverlaySeededFromCatalog(t *testing.T) {
	svc := NewService(fixtureCatalog())
	products := svc.Products(elena)
	require.Len(t, products, 1)
	assert.Equal(t, int64(101), products[0].ID)
}

func TestCreate(t *testing.T) {
	svc := NewService(fixtureCatalog())
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	p, err := svc.Create(elena, map[string]interface{}{
		"title":       "New Piece",
		"category":    "Sketches",
		"price":       "2500",
		"discount":    "10",
		"image":       "https://img/x.jpg",
		"description": "study",
	})
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), p.ID)
	assert.Equal(t, elena.ID, p.ArtistID)
	assert.Equal(t, elena.Name, p.ArtistName)
	assert.Equal(t, domain.CategorySketches, p.Category)
	assert.InDelta(t, 2500, p.Price, 1e-9)
	assert.InDelta(t, 10, p.Discount, 1e-9)

	// appended at the end of the overlay
	products := svc.Products(elena)
	require.Len(t, products, 2)
	assert.Equal(t, "New Piece", products[1].Title)
}

func TestCreateRequiresTitlePriceImage(t *testing.T) {
	svc := NewService(fixtureCatalog())
	for _, fields := range []map[string]interface{}{
		{"price": "100", "image": "x"},
		{"title": "t", "image": "x"},
		{"title": "t", "price": "100"},
		{},
	} {
		_, err := svc.Create(elena, fields)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	}
	// rejected forms never reach the overlay
	assert.Len(t, svc.Products(elena), 1)
}

func TestCreateNumericCoercion(t *testing.T) {
	svc := NewService(fixtureCatalog())
	// numbers may arrive as JSON numbers, not strings
	p, err := svc.Create(elena, map[string]interface{}{
		"title": "t", "price": 1200, "image": "x", "discount": "garbage",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1200, p.Price, 1e-9)
	// unparseable discount falls back to 0
	assert.Zero(t, p.Discount)
}

func TestCreateDefaultsCategory(t *testing.T) {
	svc := NewService(fixtureCatalog())
	p, err := svc.Create(elena, map[string]interface{}{
		"title": "t", "price": "10", "image": "x", "category": "Unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryPaintings, p.Category)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := NewService(fixtureCatalog())
	p, err := svc.Update(elena, 101, map[string]interface{}{
		"title":    "Sunset II",
		"price":    "13000",
		"discount": "5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunset II", p.Title)
	assert.InDelta(t, 13000, p.Price, 1e-9)
	assert.InDelta(t, 5, p.Discount, 1e-9)
	// untouched fields survive the merge
	assert.Equal(t, domain.CategoryPaintings, p.Category)
}

func TestUpdateUnparseablePriceKeepsOld(t *testing.T) {
	svc := NewService(fixtureCatalog())
	p, err := svc.Update(elena, 101, map[string]interface{}{"price": "abc"})
	require.NoError(t, err)
	assert.InDelta(t, 12000, p.Price, 1e-9)
}

func TestUpdateDiscountDefaultsToZero(t *testing.T) {
	svc := NewService(fixtureCatalog())
	// discount absent from the form resets to 0
	p, err := svc.Update(elena, 101, map[string]interface{}{"title": "Sunset II"})
	require.NoError(t, err)
	assert.Zero(t, p.Discount)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(fixtureCatalog())
	_, err := svc.Update(elena, 999, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(fixtureCatalog())
	require.NoError(t, svc.Delete(elena, 101))
	assert.Empty(t, svc.Products(elena))
	assert.ErrorIs(t, svc.Delete(elena, 101), ErrNotFound)
}

func TestOverlayNeverTouchesCatalog(t *testing.T) {
	cat := fixtureCatalog()
	svc := NewService(cat)

	_, err := svc.Update(elena, 101, map[string]interface{}{"title": "Changed"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(elena, 101))

	// the shared fixture is unchanged
	assert.Equal(t, "Sunset", cat.ByID(101).Title)
	assert.Len(t, cat.Products(), 2)
}

func TestSummarize(t *testing.T) {
	svc := NewService(fixtureCatalog())
	s := svc.Summarize(elena)
	assert.Equal(t, 1, s.Artworks)
	assert.InDelta(t, 10800, s.TotalValue, 1e-9) // 12000 at 10% off
}
