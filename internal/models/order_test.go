package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/orderdesk/internal/models"
)

func TestOrderWireFieldNames(t *testing.T) {
	order := models.Order{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		City:        "London",
		Phone:       "111",
		InvoiceNo:   42,
		OrderedDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:      "Pending",
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Equal(t, "Ada", wire["fname"])
	require.Equal(t, "Lovelace", wire["lname"])
	require.EqualValues(t, 42, wire["invoiceNo"])
	require.Contains(t, wire, "orderedDate")
	require.NotContains(t, wire, "first_name")
}

func TestProductLineRoundTripKeepsExtraKeys(t *testing.T) {
	raw := []byte(`{"name":"Widget","quantity":3,"price":9.99,"sku":"W-1"}`)

	var line models.ProductLine
	require.NoError(t, json.Unmarshal(raw, &line))
	require.Equal(t, "Widget", line.Name)
	require.EqualValues(t, 3, line.Quantity)
	require.Equal(t, 9.99, line.Extra["price"])
	require.Equal(t, "W-1", line.Extra["sku"])

	out, err := json.Marshal(line)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(out, &wire))
	require.Equal(t, "Widget", wire["name"])
	require.EqualValues(t, 3, wire["quantity"])
	require.Equal(t, 9.99, wire["price"])
	require.Equal(t, "W-1", wire["sku"])
}

func TestProductListValueNeverScalar(t *testing.T) {
	var list models.ProductList
	value, err := list.Value()
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), value)
}

func TestProductListScan(t *testing.T) {
	var list models.ProductList
	require.NoError(t, list.Scan([]byte(`[{"name":"Widget","quantity":2}]`)))
	require.Len(t, list, 1)
	require.Equal(t, "Widget", list[0].Name)

	require.NoError(t, list.Scan(nil))
	require.Nil(t, list)

	require.Error(t, list.Scan(42))
}

func TestExtraFieldsValueAndScan(t *testing.T) {
	var empty models.ExtraFields
	value, err := empty.Value()
	require.NoError(t, err)
	require.Nil(t, value)

	fields := models.ExtraFields{"giftWrap": true}
	value, err = fields.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"giftWrap":true}`, string(value.([]byte)))

	var scanned models.ExtraFields
	require.NoError(t, scanned.Scan([]byte(`{"courier":"DHL"}`)))
	require.Equal(t, "DHL", scanned["courier"])
}
