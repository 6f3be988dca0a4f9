// Package catalog holds the shared read-only product fixture and the query
// pipeline the gallery runs over it. Artist-local edits never land here; they
// live in the portfolio overlay.
package catalog

import (
	"github.com/google/btree"
	"github.com/samber/lo"

	"github.com/artistry-gallery/artistry/internal/domain"
)

type productItem struct {
	product domain.Product
}

func (a productItem) Less(b btree.Item) bool {
	return a.product.ID < b.(productItem).product.ID
}

// Catalog is the fixture product list plus an ID index for lookups.
type Catalog struct {
	products []domain.Product
	index    *btree.BTree
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: products,
		index:    btree.New(8),
	}
	for _, p := range products {
		c.index.ReplaceOrInsert(productItem{product: p})
	}
	return c
}

// Products returns the full fixture list. Callers must not mutate it.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// ByID returns the fixture product with the given ID, or nil.
func (c *Catalog) ByID(id int64) *domain.Product {
	item := c.index.Get(productItem{product: domain.Product{ID: id}})
	if item == nil {
		return nil
	}
	p := item.(productItem).product
	return &p
}

// ByArtist returns the fixture products owned by the artist, in catalog order.
func (c *Catalog) ByArtist(artistID int64) []domain.Product {
	return lo.Filter(c.products, func(p domain.Product, _ int) bool {
		return p.ArtistID == artistID
	})
}

// ArtistNames returns the distinct artist names in first-appearance order,
// as the gallery's artist filter offers them.
func (c *Catalog) ArtistNames() []string {
	return lo.Uniq(lo.Map(c.products, func(p domain.Product, _ int) string {
		return p.ArtistName
	}))
}

// Len returns the number of fixture products.
func (c *Catalog) Len() int {
	return len(c.products)
}
