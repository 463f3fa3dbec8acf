package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/orderdesk/internal/models"
	"github.com/example/orderdesk/internal/repository"
)

// OrderHandler manages order ingestion and per-order read endpoints.
type OrderHandler struct {
	orders repository.OrderRepository
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// orderBodyKeys are the body fields that map onto Order columns; anything
// else lands in the extra jsonb map.
var orderBodyKeys = map[string]struct{}{
	"id": {}, "created_at": {}, "updated_at": {},
	"fname": {}, "lname": {}, "address": {}, "city": {}, "state": {},
	"phone": {}, "email": {}, "product": {}, "invoiceNo": {},
	"orderedDate": {}, "status": {}, "extra": {},
}

// AddOrder upserts an order by its invoice number: the matching record is
// replaced with the supplied fields, or a new record is created when the
// invoice number is unfiled.
func (h *OrderHandler) AddOrder(c *fiber.Ctx) error {
	body := c.Body()

	var order models.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	for key, value := range raw {
		if _, known := orderBodyKeys[key]; known {
			continue
		}
		var decoded any
		if err := json.Unmarshal(value, &decoded); err != nil {
			continue
		}
		if order.Extra == nil {
			order.Extra = models.ExtraFields{}
		}
		order.Extra[key] = decoded
	}

	saved, created, err := h.orders.Upsert(c.UserContext(), order)
	if err != nil {
		return err
	}

	// updatedUser is the historical wire name for the order payload.
	if created {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":     "Order created successfully",
			"updatedUser": saved,
		})
	}
	return c.JSON(fiber.Map{
		"message":     "Order updated successfully",
		"updatedUser": saved,
	})
}

// GetOrders returns every order, unfiltered and unpaginated.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orders.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// GetLastOrder returns the order with the greatest invoice number. An
// empty store answers 200 with a message body rather than an error.
func (h *OrderHandler) GetLastOrder(c *fiber.Ctx) error {
	order, err := h.orders.LastByInvoice(c.UserContext())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"message": "No orders found"})
		}
		return err
	}
	return c.JSON(order)
}

// GetOrderDetails returns all orders for the phone query parameter.
func (h *OrderHandler) GetOrderDetails(c *fiber.Ctx) error {
	phone := c.Query("phone")
	if phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone no is req")
	}

	orders, err := h.orders.ByPhone(c.UserContext(), phone)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No orders found for this phone")
	}
	return c.JSON(orders)
}

// GetRecentOrders returns the 5 newest orders by ordered date, most
// recently inserted first on ties.
func (h *OrderHandler) GetRecentOrders(c *fiber.Ctx) error {
	orders, err := h.orders.Recent(c.UserContext(), 5)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
