// Package fixture holds the template tables and pure generation rules of the
// storefront fixture dataset.
package fixture

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CategoryTemplate seeds one category.
type CategoryTemplate struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ProductTemplate seeds one product.
type ProductTemplate struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Stock       int             `json:"stock" yaml:"stock"`
	Brand       string          `json:"brand" yaml:"brand"`
	Rating      float64         `json:"rating" yaml:"rating"`
}

// UserTemplate seeds one user. Username is "first_last".
type UserTemplate struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Phone    string `json:"phone" yaml:"phone"`
	Address  string `json:"address" yaml:"address"`
}

// TaskTemplate seeds one task per user.
type TaskTemplate struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Type        string `json:"type" yaml:"type"`
	Points      int    `json:"points" yaml:"points"`
}

// Catalog is the immutable set of template tables a run cycles through.
type Catalog struct {
	Categories     []CategoryTemplate `json:"categories" yaml:"categories"`
	Products       []ProductTemplate  `json:"products" yaml:"products"`
	Users          []UserTemplate     `json:"users" yaml:"users"`
	Tasks          []TaskTemplate     `json:"tasks" yaml:"tasks"`
	ReviewComments []string           `json:"reviewComments" yaml:"reviewComments"`
	OrderStatuses  []string           `json:"orderStatuses" yaml:"orderStatuses"`
	PaymentMethods []string           `json:"paymentMethods" yaml:"paymentMethods"`
	SkinTypes      []string           `json:"skinTypes" yaml:"skinTypes"`
	Concerns       []string           `json:"concerns" yaml:"concerns"`
}

// ErrEmptyTable is returned when a template table has no rows.
var ErrEmptyTable = errors.New("template table is empty")

// Validate checks that every table can be cycled.
func (c *Catalog) Validate() error {
	tables := map[string]int{
		"categories":     len(c.Categories),
		"products":       len(c.Products),
		"users":          len(c.Users),
		"tasks":          len(c.Tasks),
		"reviewComments": len(c.ReviewComments),
		"orderStatuses":  len(c.OrderStatuses),
		"paymentMethods": len(c.PaymentMethods),
		"skinTypes":      len(c.SkinTypes),
		"concerns":       len(c.Concerns),
	}
	for name, size := range tables {
		if size == 0 {
			return errors.Wrap(ErrEmptyTable, name)
		}
	}
	for i, p := range c.Products {
		if !p.Price.IsPositive() {
			return errors.Errorf("product template %d (%s) has non-positive price %s", i, p.Name, p.Price)
		}
	}

	return nil
}

// LoadCatalog reads a YAML catalog. Tables missing from the file fall back to the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	catalog := DefaultCatalog()
	if err := k.UnmarshalWithConf("", catalog, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           catalog,
			WeaklyTypedInput: true,
			ZeroFields:       true,
			DecodeHook:       decimalHook(),
			MatchName: func(mapKey, fieldName string) bool {
				return normalizeKey(mapKey) == normalizeKey(fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", path)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func decimalHook() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		default:
			return nil, errors.Errorf("cannot decode %s into decimal", from)
		}
	}
}

func normalizeKey(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '_' || r == '-' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}

	return string(out)
}
