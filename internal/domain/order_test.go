// internal/domain/order_test.go
package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGrandTotal(t *testing.T) {
	tests := []struct {
		name                string
		total, fee, service float64
		want                float64
	}{
		{"whole kwacha", 1300, 10, 5, 1315},
		{"cents", 99.99, 0.01, 0.25, 100.25},
		{"float noise", 0.1, 0.2, 0, 0.3},
		{"zero", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeGrandTotal(tt.total, tt.fee, tt.service); got != tt.want {
				t.Errorf("ComputeGrandTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrder_Totals(t *testing.T) {
	o := Order{
		ID: "o1", Quantity: 2, PricePerUnit: 650,
		DeliveryFee: 10, ServiceCharge: 5,
	}
	o.RecomputeTotals()
	assert.Equal(t, 1300.0, o.TotalPrice)
	assert.Equal(t, 1315.0, o.GrandTotal)
	require.NoError(t, o.CheckTotals())

	o.DeliveryFee = 20
	assert.ErrorIs(t, o.CheckTotals(), ErrTotalsMismatch)

	o.RecomputeTotals()
	assert.Equal(t, 1325.0, o.GrandTotal)
	assert.NoError(t, o.CheckTotals())
}

func TestOrder_RecomputeKeepsTotalWithoutUnitPrice(t *testing.T) {
	o := Order{TotalPrice: 400, Quantity: 1, DeliveryFee: 12.5}
	o.RecomputeTotals()
	assert.Equal(t, 400.0, o.TotalPrice)
	assert.Equal(t, 412.5, o.GrandTotal)
}

func TestOrder_DecodesPlatformJSON(t *testing.T) {
	raw := `{"id":"o1","user_id":"u1","status":"in-transit","courier_status":"accepted",
		"cylinder_type":"13kg","quantity":1,"total_price":1300,"delivery_fee":10,
		"service_charge":5,"grand_total":1315,"payment_status":"paid",
		"created_at":"2025-01-02T10:00:00Z","updated_at":"2025-01-02T10:05:00Z"}`
	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.Equal(t, OrderStatusInTransit, o.Status)
	assert.Equal(t, Cylinder13KG, o.CylinderType)
	assert.Equal(t, PaymentStatusPaid, o.PaymentStatus)
	assert.NoError(t, o.CheckTotals())
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus(" In-Transit ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusInTransit, s)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)

	assert.Equal(t, Cylinder6KG, ParseCylinderType("6KG"))
}

func TestCourierEarningsAndSummary(t *testing.T) {
	orders := []Order{
		{Status: OrderStatusDelivered, DeliveryFee: 10, CourierStatus: CourierStatusAccepted},
		{Status: OrderStatusDelivered, DeliveryFee: 12.5, CourierStatus: CourierStatusAccepted},
		{Status: OrderStatusAccepted, DeliveryFee: 15, CourierStatus: CourierStatusAccepted},
		{Status: OrderStatusAccepted, DeliveryFee: 15, CourierStatus: CourierStatusPending},
		{Status: OrderStatusCancelled, DeliveryFee: 15, CourierStatus: CourierStatusPending},
	}
	assert.Equal(t, 10.0, orders[0].CourierEarnings())
	assert.Equal(t, 0.0, orders[2].CourierEarnings())

	got := SummarizeCourierOrders(orders)
	assert.Equal(t, CourierSummary{PendingOffers: 1, Active: 1, Completed: 2, Earnings: 22.5}, got)
}
