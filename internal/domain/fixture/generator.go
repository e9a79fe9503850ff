package fixture

import (
	"strings"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMissingDependency is returned when a kind is planned before the kinds it references exist.
var ErrMissingDependency = errors.New("missing dependency")

// Generator turns template tables into unsaved records, one kind at a time.
// Planning is sequential and consumes the Draw in a fixed order, so a seed
// reproduces the same dataset.
type Generator struct {
	catalog *Catalog
	plan    Plan
	draw    *Draw
	now     func() time.Time
}

// NewGenerator builds a generator. A nil clock uses time.Now.
func NewGenerator(catalog *Catalog, plan Plan, draw *Draw, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}

	return &Generator{
		catalog: catalog,
		plan:    plan.WithDefaults(catalog),
		draw:    draw,
		now:     now,
	}
}

// Plan returns the effective plan.
func (g *Generator) Plan() Plan {
	return g.plan
}

// Catalog returns the template catalog.
func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// Seed returns the effective seed of the draw.
func (g *Generator) Seed() uint64 {
	return g.draw.Seed()
}

// Build plans the records of kind from the committed graph.
func (g *Generator) Build(kind entity.Kind, graph *Graph) ([]entity.Record, error) {
	switch kind {
	case entity.KindCategory:
		return g.categories(), nil
	case entity.KindProduct:
		return g.products(graph)
	case entity.KindUser:
		return g.users(), nil
	case entity.KindProfile:
		return g.profiles(graph)
	case entity.KindReview:
		return g.reviews(graph)
	case entity.KindOrder:
		return g.orders(graph)
	case entity.KindOrderItem:
		return g.orderItems(graph)
	case entity.KindTask:
		return g.tasks(graph)
	default:
		return nil, errors.Errorf("no generator for kind %q", kind)
	}
}

func (g *Generator) categories() []entity.Record {
	table := g.catalog.Categories
	out := make([]entity.Record, 0, g.plan.Categories)
	for i := range g.plan.Categories {
		t := Pick(table, i)
		out = append(out, &entity.Category{
			Name:        UniqueName(t.Name, i, len(table)),
			Description: t.Description,
		})
	}

	return out
}

func (g *Generator) products(graph *Graph) ([]entity.Record, error) {
	categories := graph.Records(entity.KindCategory)
	if err := needs(entity.KindProduct, g.plan.Products, entity.KindCategory, len(categories)); err != nil {
		return nil, err
	}

	table := g.catalog.Products
	out := make([]entity.Record, 0, g.plan.Products)
	for i := range g.plan.Products {
		t := Pick(table, i)
		name := UniqueName(t.Name, i, len(table))
		out = append(out, &entity.Product{
			Name:        name,
			Description: t.Description,
			Price:       t.Price,
			Stock:       t.Stock,
			Brand:       t.Brand,
			Rating:      t.Rating,
			ImageURL:    "/images/products/" + slug(name) + ".jpg",
			CategoryIDs: []uuid.UUID{Pick(categories, i).Identity()},
			ReviewIDs:   []uuid.UUID{},
		})
	}

	return out, nil
}

func (g *Generator) users() []entity.Record {
	table := g.catalog.Users
	out := make([]entity.Record, 0, g.plan.Users)
	for i := range g.plan.Users {
		t := Pick(table, i)
		out = append(out, &entity.User{
			Username: UniqueName(t.Username, i, len(table)),
			Email:    UniqueEmail(t.Email, i, len(table)),
			Password: t.Password,
			Phone:    t.Phone,
			Address:  t.Address,
			Role:     entity.RoleCustomer,
			OrderIDs: []uuid.UUID{},
		})
	}

	return out
}

func (g *Generator) profiles(graph *Graph) ([]entity.Record, error) {
	users := Of[*entity.User](graph, entity.KindUser)
	categories := graph.Records(entity.KindCategory)
	if err := needs(entity.KindProfile, len(users), entity.KindCategory, len(categories)); err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, len(users))
	for i, user := range users {
		first, last := SplitUsername(Pick(g.catalog.Users, i).Username)
		gender := entity.GenderMale
		if i%2 == 0 {
			gender = entity.GenderFemale
		}
		out = append(out, &entity.Profile{
			UserID:        user.ID,
			FirstName:     first,
			LastName:      last,
			DateOfBirth:   time.Date(1990+i, time.Month(i%12+1), (i*3)%28+1, 0, 0, 0, 0, time.UTC),
			Gender:        gender,
			LoyaltyPoints: g.draw.Loyalty(),
			Preferences: entity.Preferences{
				SkinType:           Pick(g.catalog.SkinTypes, i),
				Concerns:           []string{Pick(g.catalog.Concerns, i)},
				FavoriteCategories: []uuid.UUID{Pick(categories, i).Identity()},
			},
		})
	}

	return out, nil
}

func (g *Generator) reviews(graph *Graph) ([]entity.Record, error) {
	users := graph.Records(entity.KindUser)
	products := graph.Records(entity.KindProduct)
	if err := needs(entity.KindReview, g.plan.Reviews, entity.KindUser, len(users)); err != nil {
		return nil, err
	}
	if err := needs(entity.KindReview, g.plan.Reviews, entity.KindProduct, len(products)); err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, g.plan.Reviews)
	for i := range g.plan.Reviews {
		out = append(out, &entity.Review{
			UserID:    Pick(users, i).Identity(),
			ProductID: Pick(products, i).Identity(),
			Rating:    g.draw.Rating(),
			Comment:   Pick(g.catalog.ReviewComments, i),
		})
	}

	return out, nil
}

func (g *Generator) orders(graph *Graph) ([]entity.Record, error) {
	users := Of[*entity.User](graph, entity.KindUser)
	if err := needs(entity.KindOrder, g.plan.Orders, entity.KindUser, len(users)); err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, g.plan.Orders)
	for i := range g.plan.Orders {
		user := Pick(users, i)
		order := &entity.Order{
			UserID:          user.ID,
			ItemIDs:         []uuid.UUID{},
			Status:          Pick(g.catalog.OrderStatuses, i),
			ShippingAddress: user.Address,
			PaymentMethod:   Pick(g.catalog.PaymentMethods, i),
			IsPaid:          i%3 != 0,
		}
		order.CreatedAt = time.Date(2024, time.Month(i%12+1), (i*2)%28+1, 0, 0, 0, 0, time.UTC)
		out = append(out, order)
	}

	return out, nil
}

func (g *Generator) orderItems(graph *Graph) ([]entity.Record, error) {
	orders := graph.Records(entity.KindOrder)
	products := Of[*entity.Product](graph, entity.KindProduct)
	if err := needs(entity.KindOrderItem, len(orders), entity.KindProduct, len(products)); err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, len(orders)*ItemsMax)
	for i, order := range orders {
		n := g.draw.ItemCount()
		for j := range n {
			product := Pick(products, i+j)
			out = append(out, &entity.OrderItem{
				OrderID:   order.Identity(),
				ProductID: product.ID,
				Quantity:  g.draw.Quantity(),
				Price:     product.Price,
			})
		}
	}

	return out, nil
}

func (g *Generator) tasks(graph *Graph) ([]entity.Record, error) {
	users := graph.Records(entity.KindUser)

	out := make([]entity.Record, 0, len(users)*len(g.catalog.Tasks))
	for _, user := range users {
		for _, t := range g.catalog.Tasks {
			task := &entity.Task{
				UserID:      user.Identity(),
				Title:       t.Title,
				Description: t.Description,
				Category:    t.Category,
				Type:        t.Type,
				Rewards: entity.TaskRewards{
					Points:         t.Points,
					DiscountPoints: t.Points / 10,
				},
				Status: entity.TaskStatusPending,
			}
			if g.draw.Chance() {
				task.Complete(g.now())
			}
			out = append(out, task)
		}
	}

	return out, nil
}

func needs(kind entity.Kind, want int, dep entity.Kind, have int) error {
	if want > 0 && have == 0 {
		return errors.Wrapf(ErrMissingDependency, "%s needs %s", kind, dep)
	}

	return nil
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteRune('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
