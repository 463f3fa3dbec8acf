package handlers_test

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/orderdesk/internal/config"
	"github.com/example/orderdesk/internal/handlers"
	"github.com/example/orderdesk/internal/models"
	"github.com/example/orderdesk/internal/repository"
	"github.com/example/orderdesk/internal/routes"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:      "7000",
		JWTSecret:    "test-secret",
		TokenExpires: time.Hour,
	}
}

func newTestApp(users repository.UserRepository, orders repository.OrderRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routes.RegisterHandlers(app, users, orders, testConfig())
	return app
}

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Username] = *user
	return nil
}

// fakeOrderRepo mirrors the GORM repository's semantics over a slice,
// with created_at standing in for insertion order.
type fakeOrderRepo struct {
	orders []models.Order
	clock  time.Time
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeOrderRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeOrderRepo) Upsert(ctx context.Context, order models.Order) (models.Order, bool, error) {
	for i, existing := range f.orders {
		if existing.InvoiceNo == order.InvoiceNo {
			order.BaseModel = existing.BaseModel
			order.UpdatedAt = f.tick()
			f.orders[i] = order
			return order, false, nil
		}
	}
	order.ID = uuid.New()
	order.CreatedAt = f.tick()
	order.UpdatedAt = order.CreatedAt
	f.orders = append(f.orders, order)
	return order, true, nil
}

func (f *fakeOrderRepo) All(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) LastByInvoice(ctx context.Context) (models.Order, error) {
	if len(f.orders) == 0 {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	last := f.orders[0]
	for _, o := range f.orders[1:] {
		if o.InvoiceNo > last.InvoiceNo {
			last = o
		}
	}
	return last, nil
}

func (f *fakeOrderRepo) ByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, o := range f.orders {
		if o.Phone == phone {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].OrderedDate.Equal(out[j].OrderedDate) {
			return out[i].OrderedDate.After(out[j].OrderedDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrderRepo) StatusSummary(ctx context.Context) (models.StatusSummary, error) {
	var s models.StatusSummary
	s.TotalOrders = int64(len(f.orders))
	for _, o := range f.orders {
		switch o.Status {
		case "Pending":
			s.PendingOrders++
		case "In progress":
			s.InProgressOrders++
		case "Completed":
			s.CompletedOrders++
		}
	}
	return s, nil
}

func (f *fakeOrderRepo) CustomerRollup(ctx context.Context) ([]models.CustomerRollup, error) {
	byPhone := make(map[string]*models.CustomerRollup)
	phones := make([]string, 0)
	for _, o := range f.orders {
		if r, ok := byPhone[o.Phone]; ok {
			r.OrderCount++
			continue
		}
		byPhone[o.Phone] = &models.CustomerRollup{
			Phone:      o.Phone,
			FirstName:  o.FirstName,
			LastName:   o.LastName,
			Email:      o.Email,
			OrderCount: 1,
		}
		phones = append(phones, o.Phone)
	}
	out := make([]models.CustomerRollup, 0, len(phones))
	for _, phone := range phones {
		out = append(out, *byPhone[phone])
	}
	return out, nil
}

func (f *fakeOrderRepo) ProductTotals(ctx context.Context) ([]models.ProductTotal, error) {
	sums := make(map[string]float64)
	names := make([]string, 0)
	for _, o := range f.orders {
		for _, line := range o.Product {
			if _, ok := sums[line.Name]; !ok {
				names = append(names, line.Name)
			}
			sums[line.Name] += line.Quantity
		}
	}
	out := make([]models.ProductTotal, 0, len(names))
	for _, name := range names {
		out = append(out, models.ProductTotal{Name: name, TotalSold: sums[name]})
	}
	return out, nil
}
