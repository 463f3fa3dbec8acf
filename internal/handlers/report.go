package handlers

import (
	"math"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdesk/internal/models"
	"github.com/example/orderdesk/internal/repository"
)

// ReportHandler serves aggregate reporting endpoints over the order store.
type ReportHandler struct {
	orders repository.OrderRepository
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(orders repository.OrderRepository) *ReportHandler {
	return &ReportHandler{orders: orders}
}

// GetOrdersSummary returns the total order count plus exact-match counts
// for the Pending / In progress / Completed statuses.
func (h *ReportHandler) GetOrdersSummary(c *fiber.Ctx) error {
	summary, err := h.orders.StatusSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// GetCustomerDetails returns the per-phone customer rollup.
func (h *ReportHandler) GetCustomerDetails(c *fiber.Ctx) error {
	customers, err := h.orders.CustomerRollup(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(customers)
}

// BestSelling ranks products by their share of all units sold. The store
// sums quantities per product name; the percentage and the final ordering
// are computed here.
func (h *ReportHandler) BestSelling(c *fiber.Ctx) error {
	totals, err := h.orders.ProductTotals(c.UserContext())
	if err != nil {
		return err
	}

	var totalSold float64
	for _, t := range totals {
		totalSold += t.TotalSold
	}

	ranked := make([]models.BestSeller, 0, len(totals))
	for _, t := range totals {
		var pct float64
		if totalSold > 0 {
			pct = math.Round(t.TotalSold/totalSold*10000) / 100
		}
		ranked = append(ranked, models.BestSeller{
			Name:       t.Name,
			TotalSold:  t.TotalSold,
			Percentage: pct,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})

	return c.JSON(ranked)
}
