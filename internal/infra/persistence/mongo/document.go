package mongo

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents keep the field names the storefront API exposes so that back-reference
// fields can be addressed by their entity.Field name.

// BaseDoc holds the identity columns shared by every document. It must stay
// exported: the bson codec skips unexported embedded structs.
type BaseDoc struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type categoryDoc struct {
	BaseDoc     `bson:",inline"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
}

type productDoc struct {
	BaseDoc     `bson:",inline"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Stock       int                  `bson:"stock"`
	Brand       string               `bson:"brand"`
	Rating      float64              `bson:"rating"`
	ImageURL    string               `bson:"imageUrl"`
	Categories  []string             `bson:"categories"`
	Reviews     []string             `bson:"reviews"`
}

type userDoc struct {
	BaseDoc      `bson:",inline"`
	Username     string   `bson:"username"`
	Email        string   `bson:"email"`
	PasswordHash string   `bson:"password"`
	Phone        string   `bson:"phone"`
	Address      string   `bson:"address"`
	Role         string   `bson:"role"`
	Profile      *string  `bson:"profile"`
	Orders       []string `bson:"orders"`
}

type preferencesDoc struct {
	SkinType           string   `bson:"skinType"`
	Concerns           []string `bson:"concerns"`
	FavoriteCategories []string `bson:"favoriteCategories"`
}

type profileDoc struct {
	BaseDoc       `bson:",inline"`
	User          string         `bson:"user"`
	FirstName     string         `bson:"firstName"`
	LastName      string         `bson:"lastName"`
	DateOfBirth   time.Time      `bson:"dateOfBirth"`
	Gender        string         `bson:"gender"`
	LoyaltyPoints int            `bson:"loyaltyPoints"`
	Preferences   preferencesDoc `bson:"preferences"`
}

type reviewDoc struct {
	BaseDoc `bson:",inline"`
	User    string `bson:"user"`
	Product string `bson:"product"`
	Rating  int    `bson:"rating"`
	Comment string `bson:"comment"`
}

type orderDoc struct {
	BaseDoc         `bson:",inline"`
	User            string               `bson:"user"`
	Items           []string             `bson:"items"`
	TotalPrice      primitive.Decimal128 `bson:"totalPrice"`
	Status          string               `bson:"status"`
	ShippingAddress string               `bson:"shippingAddress"`
	PaymentMethod   string               `bson:"paymentMethod"`
	IsPaid          bool                 `bson:"isPaid"`
}

type orderItemDoc struct {
	BaseDoc  `bson:",inline"`
	Order    string               `bson:"order"`
	Product  string               `bson:"product"`
	Quantity int                  `bson:"quantity"`
	Price    primitive.Decimal128 `bson:"price"`
}

type rewardsDoc struct {
	Points         int `bson:"points"`
	DiscountPoints int `bson:"discountPoints"`
}

type taskDoc struct {
	BaseDoc     `bson:",inline"`
	User        string     `bson:"user"`
	Title       string     `bson:"title"`
	Description string     `bson:"description"`
	Category    string     `bson:"category"`
	Type        string     `bson:"type"`
	Rewards     rewardsDoc `bson:"rewards"`
	Status      string     `bson:"status"`
	CompletedAt *time.Time `bson:"completedAt"`
}

type runDoc struct {
	ID            string           `bson:"_id"`
	Status        string           `bson:"status"`
	Stage         string           `bson:"stage"`
	Kind          string           `bson:"kind"`
	LastCommitted string           `bson:"lastCommitted"`
	Error         string           `bson:"error"`
	Counts        map[string]int64 `bson:"counts"`
	Seed          int64            `bson:"seed"`
	StartedAt     time.Time        `bson:"startedAt"`
	FinishedAt    *time.Time       `bson:"finishedAt"`
}

func newBaseDoc(b entity.Base) BaseDoc {
	return BaseDoc{ID: b.ID.String(), CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func (d BaseDoc) entity() (entity.Base, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Base{}, errors.Wrapf(err, "parse id %q", d.ID)
	}

	return entity.Base{ID: id, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}, nil
}

func toDocument(rec entity.Record) (any, error) {
	switch r := rec.(type) {
	case *entity.Category:
		return &categoryDoc{BaseDoc: newBaseDoc(r.Base), Name: r.Name, Description: r.Description}, nil
	case *entity.Product:
		price, err := toDecimal128(r.Price)
		if err != nil {
			return nil, err
		}

		return &productDoc{
			BaseDoc:     newBaseDoc(r.Base),
			Name:        r.Name,
			Description: r.Description,
			Price:       price,
			Stock:       r.Stock,
			Brand:       r.Brand,
			Rating:      r.Rating,
			ImageURL:    r.ImageURL,
			Categories:  idStrings(r.CategoryIDs),
			Reviews:     idStrings(r.ReviewIDs),
		}, nil
	case *entity.User:
		var profile *string
		if r.ProfileID != nil {
			s := r.ProfileID.String()
			profile = &s
		}

		return &userDoc{
			BaseDoc:      newBaseDoc(r.Base),
			Username:     r.Username,
			Email:        r.Email,
			PasswordHash: r.PasswordHash,
			Phone:        r.Phone,
			Address:      r.Address,
			Role:         string(r.Role),
			Profile:      profile,
			Orders:       idStrings(r.OrderIDs),
		}, nil
	case *entity.Profile:
		return &profileDoc{
			BaseDoc:       newBaseDoc(r.Base),
			User:          r.UserID.String(),
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			DateOfBirth:   r.DateOfBirth,
			Gender:        r.Gender,
			LoyaltyPoints: r.LoyaltyPoints,
			Preferences: preferencesDoc{
				SkinType:           r.Preferences.SkinType,
				Concerns:           r.Preferences.Concerns,
				FavoriteCategories: idStrings(r.Preferences.FavoriteCategories),
			},
		}, nil
	case *entity.Review:
		return &reviewDoc{
			BaseDoc: newBaseDoc(r.Base),
			User:    r.UserID.String(),
			Product: r.ProductID.String(),
			Rating:  r.Rating,
			Comment: r.Comment,
		}, nil
	case *entity.Order:
		total, err := toDecimal128(r.TotalPrice)
		if err != nil {
			return nil, err
		}

		return &orderDoc{
			BaseDoc:         newBaseDoc(r.Base),
			User:            r.UserID.String(),
			Items:           idStrings(r.ItemIDs),
			TotalPrice:      total,
			Status:          r.Status,
			ShippingAddress: r.ShippingAddress,
			PaymentMethod:   r.PaymentMethod,
			IsPaid:          r.IsPaid,
		}, nil
	case *entity.OrderItem:
		price, err := toDecimal128(r.Price)
		if err != nil {
			return nil, err
		}

		return &orderItemDoc{
			BaseDoc:  newBaseDoc(r.Base),
			Order:    r.OrderID.String(),
			Product:  r.ProductID.String(),
			Quantity: r.Quantity,
			Price:    price,
		}, nil
	case *entity.Task:
		return &taskDoc{
			BaseDoc:     newBaseDoc(r.Base),
			User:        r.UserID.String(),
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Type:        r.Type,
			Rewards:     rewardsDoc{Points: r.Rewards.Points, DiscountPoints: r.Rewards.DiscountPoints},
			Status:      r.Status,
			CompletedAt: r.CompletedAt,
		}, nil
	default:
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%T", rec)
	}
}

// newDocument returns an empty document to decode a stored kind into.
func newDocument(kind entity.Kind) (any, error) {
	switch kind {
	case entity.KindCategory:
		return &categoryDoc{}, nil
	case entity.KindProduct:
		return &productDoc{}, nil
	case entity.KindUser:
		return &userDoc{}, nil
	case entity.KindProfile:
		return &profileDoc{}, nil
	case entity.KindReview:
		return &reviewDoc{}, nil
	case entity.KindOrder:
		return &orderDoc{}, nil
	case entity.KindOrderItem:
		return &orderItemDoc{}, nil
	case entity.KindTask:
		return &taskDoc{}, nil
	default:
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
}

func fromDocument(doc any) (entity.Record, error) {
	ids := &idParser{}

	var rec entity.Record
	switch d := doc.(type) {
	case *categoryDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.Category{Base: base, Name: d.Name, Description: d.Description}
	case *productDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.Product{
			Base:        base,
			Name:        d.Name,
			Description: d.Description,
			Price:       ids.decimal(d.Price),
			Stock:       d.Stock,
			Brand:       d.Brand,
			Rating:      d.Rating,
			ImageURL:    d.ImageURL,
			CategoryIDs: ids.list(d.Categories),
			ReviewIDs:   ids.list(d.Reviews),
		}
	case *userDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		user := &entity.User{
			Base:         base,
			Username:     d.Username,
			Email:        d.Email,
			PasswordHash: d.PasswordHash,
			Phone:        d.Phone,
			Address:      d.Address,
			Role:         entity.Role(d.Role),
			OrderIDs:     ids.list(d.Orders),
		}
		if d.Profile != nil {
			id := ids.one(*d.Profile)
			user.ProfileID = &id
		}
		rec = user
	case *profileDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.Profile{
			Base:          base,
			UserID:        ids.one(d.User),
			FirstName:     d.FirstName,
			LastName:      d.LastName,
			DateOfBirth:   d.DateOfBirth,
			Gender:        d.Gender,
			LoyaltyPoints: d.LoyaltyPoints,
			Preferences: entity.Preferences{
				SkinType:           d.Preferences.SkinType,
				Concerns:           d.Preferences.Concerns,
				FavoriteCategories: ids.list(d.Preferences.FavoriteCategories),
			},
		}
	case *reviewDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.Review{
			Base:      base,
			UserID:    ids.one(d.User),
			ProductID: ids.one(d.Product),
			Rating:    d.Rating,
			Comment:   d.Comment,
		}
	case *orderDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.Order{
			Base:            base,
			UserID:          ids.one(d.User),
			ItemIDs:         ids.list(d.Items),
			TotalPrice:      ids.decimal(d.TotalPrice),
			Status:          d.Status,
			ShippingAddress: d.ShippingAddress,
			PaymentMethod:   d.PaymentMethod,
			IsPaid:          d.IsPaid,
		}
	case *orderItemDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.OrderItem{
			Base:      base,
			OrderID:   ids.one(d.Order),
			ProductID: ids.one(d.Product),
			Quantity:  d.Quantity,
			Price:     ids.decimal(d.Price),
		}
	case *taskDoc:
		base, err := d.entity()
		if err != nil {
			return nil, err
		}
		rec = &entity.Task{
			Base:        base,
			UserID:      ids.one(d.User),
			Title:       d.Title,
			Description: d.Description,
			Category:    d.Category,
			Type:        d.Type,
			Rewards:     entity.TaskRewards{Points: d.Rewards.Points, DiscountPoints: d.Rewards.DiscountPoints},
			Status:      d.Status,
			CompletedAt: d.CompletedAt,
		}
	default:
		return nil, errors.Errorf("unsupported document %T", doc)
	}

	if ids.err != nil {
		return nil, ids.err
	}

	return rec, nil
}

func toRunDoc(run *entity.Run) *runDoc {
	counts := make(map[string]int64, len(run.Counts))
	for kind, n := range run.Counts {
		counts[string(kind)] = n
	}

	return &runDoc{
		ID:            run.ID.String(),
		Status:        string(run.Status),
		Stage:         string(run.Stage),
		Kind:          string(run.Kind),
		LastCommitted: string(run.LastCommitted),
		Error:         run.Error,
		Counts:        counts,
		Seed:          int64(run.Seed),
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}
}

func fromRunDoc(d *runDoc) (*entity.Run, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse run id %q", d.ID)
	}

	counts := make(map[entity.Kind]int64, len(d.Counts))
	for kind, n := range d.Counts {
		counts[entity.Kind(kind)] = n
	}

	return &entity.Run{
		ID:            id,
		Status:        entity.RunStatus(d.Status),
		Stage:         entity.Stage(d.Stage),
		Kind:          entity.Kind(d.Kind),
		LastCommitted: entity.Kind(d.LastCommitted),
		Error:         d.Error,
		Counts:        counts,
		Seed:          uint64(d.Seed),
		StartedAt:     d.StartedAt,
		FinishedAt:    d.FinishedAt,
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	out, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "convert %s to decimal128", d)
	}

	return out, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// idParser collects the first conversion error so mappings stay flat.
type idParser struct {
	err error
}

func (p *idParser) one(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil && p.err == nil {
		p.err = errors.Wrapf(err, "parse id %q", s)
	}

	return id
}

func (p *idParser) list(ss []string) []uuid.UUID {
	if len(ss) == 0 {
		return nil
	}

	out := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		out = append(out, p.one(s))
	}

	return out
}

func (p *idParser) decimal(d primitive.Decimal128) decimal.Decimal {
	out, err := decimal.NewFromString(d.String())
	if err != nil && p.err == nil {
		p.err = errors.Wrapf(err, "parse decimal %s", d)
	}

	return out
}
