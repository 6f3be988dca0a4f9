package domain

// Category is the closed set of artwork categories.
type Category string

const (
	CategoryPaintings  Category = "Paintings"
	CategorySketches   Category = "Sketches"
	CategoryDigitalArt Category = "Digital Art"
	CategorySculptures Category = "Sculptures"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryPaintings,
	CategorySketches,
	CategoryDigitalArt,
	CategorySculptures,
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryPaintings, CategorySketches, CategoryDigitalArt, CategorySculptures:
		return true
	}
	return false
}

// Product represents a catalog artwork. Fixture products are shared and
// read-only; artist-created products exist only in a session-local overlay.
type Product struct {
	ID          int64    `json:"id" csv:"id"`
	Title       string   `json:"title" csv:"title"`
	Category    Category `json:"category" csv:"category"`
	ArtistID    int64    `json:"artistId" csv:"artist_id"`
	ArtistName  string   `json:"artistName" csv:"artist_name"`
	Price       float64  `json:"price" csv:"price"`       // main currency units, non-negative
	Discount    float64  `json:"discount" csv:"discount"` // percent, 0-100
	Image       string   `json:"image" csv:"image"`
	Description string   `json:"description" csv:"-"`
}

// EffectivePrice is the price after applying the percentage discount.
// Never negative for valid price/discount ranges.
func (p Product) EffectivePrice() float64 {
	v := p.Price - p.Price*p.Discount/100
	if v < 0 {
		return 0
	}
	return v
}
