package repository

import (
	"context"

	"github.com/example/orderdesk/internal/models"
)

// UserRepository exposes persistence for login users.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// OrderRepository exposes persistence and reporting queries for orders.
// Not-found conditions are signaled with gorm.ErrRecordNotFound.
type OrderRepository interface {
	// Upsert writes the order keyed by its invoice number. It reports
	// whether a new record was created.
	Upsert(ctx context.Context, order models.Order) (models.Order, bool, error)
	All(ctx context.Context) ([]models.Order, error)
	LastByInvoice(ctx context.Context) (models.Order, error)
	ByPhone(ctx context.Context, phone string) ([]models.Order, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
	StatusSummary(ctx context.Context) (models.StatusSummary, error)
	CustomerRollup(ctx context.Context) ([]models.CustomerRollup, error)
	ProductTotals(ctx context.Context) ([]models.ProductTotal, error)
}
