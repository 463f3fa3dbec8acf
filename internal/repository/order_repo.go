package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/orderdesk/internal/models"
)

var _ OrderRepository = (*GormOrderRepo)(nil)

// GormOrderRepo implements OrderRepository on a gorm handle.
type GormOrderRepo struct {
	db *gorm.DB
}

// NewOrderRepository constructs GormOrderRepo.
func NewOrderRepository(db *gorm.DB) *GormOrderRepo {
	return &GormOrderRepo{db: db}
}

// orderUpsertColumns are the columns a conflicting insert overwrites.
var orderUpsertColumns = []string{
	"first_name", "last_name", "address", "city", "state",
	"phone", "email", "product", "ordered_date", "status", "extra", "updated_at",
}

// Upsert updates the order matching the invoice number, or inserts a new
// one. The insert carries an ON CONFLICT clause on invoice_no, so a
// concurrent first-time upsert for the same invoice cannot produce a
// duplicate; the unique index turns the losing insert into an update.
func (r *GormOrderRepo) Upsert(ctx context.Context, order models.Order) (models.Order, bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.Where("invoice_no = ?", order.InvoiceNo).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "invoice_no"}},
				DoUpdates: clause.AssignmentColumns(orderUpsertColumns),
			}).Create(&order).Error
		}
		if err != nil {
			return err
		}

		// Identity and creation time stay with the stored record; the
		// supplied fields replace the rest.
		order.BaseModel = existing.BaseModel
		return tx.Save(&order).Error
	})
	return order, created, err
}

func (r *GormOrderRepo) All(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).Order("created_at").Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepo) LastByInvoice(ctx context.Context) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Order("invoice_no desc").First(&order).Error
	return order, err
}

func (r *GormOrderRepo) ByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).Where("phone = ?", phone).Order("created_at").Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepo) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Order("ordered_date desc, created_at desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// StatusSummary counts are string-exact on purpose: an order whose status
// is empty or spelled differently only contributes to the total.
func (r *GormOrderRepo) StatusSummary(ctx context.Context) (models.StatusSummary, error) {
	var summary models.StatusSummary
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		return summary, err
	}

	byStatus := []struct {
		status string
		dest   *int64
	}{
		{"Pending", &summary.PendingOrders},
		{"In progress", &summary.InProgressOrders},
		{"Completed", &summary.CompletedOrders},
	}
	for _, c := range byStatus {
		if err := r.db.WithContext(ctx).Model(&models.Order{}).
			Where("status = ?", c.status).
			Count(c.dest).Error; err != nil {
			return summary, err
		}
	}
	return summary, nil
}

const customerRollupSQL = `
SELECT phone,
       (array_agg(first_name ORDER BY created_at))[1] AS first_name,
       (array_agg(last_name ORDER BY created_at))[1]  AS last_name,
       (array_agg(email ORDER BY created_at))[1]      AS email,
       count(*)                                       AS order_count
FROM orders
GROUP BY phone`

// CustomerRollup groups orders by phone. First-seen contact fields are
// resolved by earliest created_at, which makes the result deterministic.
func (r *GormOrderRepo) CustomerRollup(ctx context.Context) ([]models.CustomerRollup, error) {
	rollups := make([]models.CustomerRollup, 0)
	err := r.db.WithContext(ctx).Raw(customerRollupSQL).Scan(&rollups).Error
	return rollups, err
}

const productTotalsSQL = `
SELECT item->>'name'                                  AS name,
       COALESCE(SUM((item->>'quantity')::numeric), 0) AS total_sold
FROM orders, jsonb_array_elements(product) AS item
GROUP BY item->>'name'`

// ProductTotals flattens every order's product array and sums the
// quantity per distinct product name.
func (r *GormOrderRepo) ProductTotals(ctx context.Context) ([]models.ProductTotal, error) {
	totals := make([]models.ProductTotal, 0)
	err := r.db.WithContext(ctx).Raw(productTotalsSQL).Scan(&totals).Error
	return totals, err
}
