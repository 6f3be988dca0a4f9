// Package fixture loads the bundled JSON data files that stand in for a real
// backend: the user list, the product catalog and the order history. All
// three are read once at startup and treated as read-only afterwards.
package fixture

import (
	"os"
	"path/filepath"

	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/artistry-gallery/artistry/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	UsersFile    = "users.json"
	ProductsFile = "products.json"
	OrdersFile   = "orders.json"
)

type usersDoc struct {
	Users []domain.Account `json:"users"`
}

type productsDoc struct {
	Products []domain.Product `json:"products"`
}

type ordersDoc struct {
	Orders []domain.Order `json:"orders"`
}

// Fixtures holds the loaded fixture data.
type Fixtures struct {
	Accounts []domain.Account
	Products []domain.Product
	Orders   []domain.Order
}

// Load reads all fixture files from dir. A missing or unreadable file is an
// error; the service has no data source besides these files.
func Load(dir string) (*Fixtures, error) {
	fx := &Fixtures{}

	var users usersDoc
	if err := readDoc(filepath.Join(dir, UsersFile), &users); err != nil {
		return nil, err
	}
	fx.Accounts = users.Users

	var products productsDoc
	if err := readDoc(filepath.Join(dir, ProductsFile), &products); err != nil {
		return nil, err
	}
	fx.Products = products.Products

	var orders ordersDoc
	if err := readDoc(filepath.Join(dir, OrdersFile), &orders); err != nil {
		return nil, err
	}
	fx.Orders = orders.Orders

	// Fixture dates are hand-written strings in assorted formats.
	for i := range fx.Orders {
		o := &fx.Orders[i]
		if o.Date == "" {
			continue
		}
		t, err := dateparse.ParseAny(o.Date)
		if err != nil {
			zap.S().Warnf("order %s has unparseable date %q", o.OrderID, o.Date)
			continue
		}
		o.PlacedAt = t
	}

	zap.S().Infof("fixtures loaded: %d accounts, %d products, %d orders",
		len(fx.Accounts), len(fx.Products), len(fx.Orders))
	return fx, nil
}

func readDoc(file string, v interface{}) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "read fixture %s", file)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "parse fixture %s", file)
	}
	return nil
}
