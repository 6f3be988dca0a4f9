// Package portfolio implements the artist's local-only artwork CRUD. Each
// artist gets an overlay seeded from the shared catalog fixture; creates,
// edits and deletes land only in that overlay and are never written back, so
// they vanish with the process. This mirrors the throwaway dashboard state of
// the client build and must not be mistaken for persistence.
package portfolio

import (
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/artistry-gallery/artistry/internal/catalog"
	"github.com/artistry-gallery/artistry/internal/domain"
)

// ErrMissingRequiredField rejects artwork forms without title, price or image.
var ErrMissingRequiredField = errors.New("title, price and image are required")

// ErrNotFound is returned when the artwork ID is not in the overlay.
var ErrNotFound = errors.New("artwork not found")

// form is the artwork form as submitted: every value arrives as text and is
// parsed here. Absent keys stay nil so updates can distinguish "not supplied"
// from "empty".
type form struct {
	Title       *string `mapstructure:"title"`
	Category    *string `mapstructure:"category"`
	Price       *string `mapstructure:"price"`
	Discount    *string `mapstructure:"discount"`
	Image       *string `mapstructure:"image"`
	Description *string `mapstructure:"description"`
}

func decodeForm(fields map[string]interface{}) (*form, error) {
	var f form
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(fields); err != nil {
		return nil, errors.Wrap(err, "decode artwork form")
	}
	return &f, nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Overlay is one artist's session-local product list.
type Overlay struct {
	artist domain.Account

	mu       sync.Mutex
	products []domain.Product
}

// Service hands out overlays by artist, seeding each from the catalog.
type Service struct {
	catalog *catalog.Catalog

	mu       sync.Mutex
	overlays map[int64]*Overlay

	// now is swappable in tests; new artwork IDs derive from it.
	now func() time.Time
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{
		catalog:  c,
		overlays: make(map[int64]*Overlay),
		now:      time.Now,
	}
}

// Overlay returns the acting artist's overlay, creating it from the catalog
// fixture on first access.
func (s *Service) Overlay(artist domain.Account) *Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.overlays[artist.ID]; ok {
		return o
	}
	o := &Overlay{artist: artist, products: s.catalog.ByArtist(artist.ID)}
	s.overlays[artist.ID] = o
	return o
}

// Create validates the form and appends a new artwork attributed to the
// overlay's artist. The ID derives from the current time, like the client
// build's Date.now().
func (s *Service) Create(artist domain.Account, fields map[string]interface{}) (*domain.Product, error) {
	f, err := decodeForm(fields)
	if err != nil {
		return nil, err
	}
	if str(f.Title) == "" || str(f.Price) == "" || str(f.Image) == "" {
		return nil, ErrMissingRequiredField
	}

	cat := domain.Category(str(f.Category))
	if !cat.Valid() {
		cat = domain.CategoryPaintings
	}

	p := domain.Product{
		ID:          s.now().UnixMilli(),
		Title:       str(f.Title),
		Category:    cat,
		ArtistID:    artist.ID,
		ArtistName:  artist.Name,
		Price:       cast.ToFloat64(str(f.Price)),
		Discount:    cast.ToFloat64(str(f.Discount)),
		Image:       str(f.Image),
		Description: str(f.Description),
	}

	o := s.Overlay(artist)
	o.mu.Lock()
	o.products = append(o.products, p)
	o.mu.Unlock()
	return &p, nil
}

// Update merges the supplied fields into the matching artwork. Price keeps
// its old value when the submitted text does not parse; discount falls back
// to 0 when unparseable or absent.
func (s *Service) Update(artist domain.Account, id int64, fields map[string]interface{}) (*domain.Product, error) {
	f, err := decodeForm(fields)
	if err != nil {
		return nil, err
	}

	o := s.Overlay(artist)
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.products {
		p := &o.products[i]
		if p.ID != id {
			continue
		}
		if f.Title != nil && *f.Title != "" {
			p.Title = *f.Title
		}
		if cat := domain.Category(str(f.Category)); cat.Valid() {
			p.Category = cat
		}
		if f.Price != nil {
			if v, err := cast.ToFloat64E(*f.Price); err == nil {
				p.Price = v
			}
		}
		p.Discount = cast.ToFloat64(str(f.Discount))
		if f.Image != nil && *f.Image != "" {
			p.Image = *f.Image
		}
		if f.Description != nil {
			p.Description = *f.Description
		}
		out := *p
		return &out, nil
	}
	return nil, ErrNotFound
}

// Delete removes the artwork from the overlay.
func (s *Service) Delete(artist domain.Account, id int64) error {
	o := s.Overlay(artist)
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.products {
		if o.products[i].ID == id {
			o.products = append(o.products[:i], o.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Products returns a copy of the artist's overlay in insertion order.
func (s *Service) Products(artist domain.Account) []domain.Product {
	o := s.Overlay(artist)
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]domain.Product, len(o.products))
	copy(out, o.products)
	return out
}

// Summary is the dashboard headline: artwork count and the summed effective
// value of the portfolio.
type Summary struct {
	Artworks   int     `json:"artworks"`
	TotalValue float64 `json:"totalValue"`
}

// Summarize computes the overlay summary for the artist.
func (s *Service) Summarize(artist domain.Account) Summary {
	o := s.Overlay(artist)
	o.mu.Lock()
	defer o.mu.Unlock()
	sum := Summary{Artworks: len(o.products)}
	for _, p := range o.products {
		sum.TotalValue += p.EffectivePrice()
	}
	return sum
}
