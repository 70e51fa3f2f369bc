// internal/domain/order.go
package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type OrderStatus string
type CourierStatus string
type PaymentStatus string
type CylinderType string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusInTransit OrderStatus = "in-transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

// CourierStatusNone means no courier has been assigned yet.
const (
	CourierStatusNone     CourierStatus = ""
	CourierStatusPending  CourierStatus = "pending"
	CourierStatusAccepted CourierStatus = "accepted"
	CourierStatusRejected CourierStatus = "rejected"
)

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

const (
	Cylinder6KG  CylinderType = "6kg"
	Cylinder13KG CylinderType = "13kg"
	Cylinder25KG CylinderType = "25kg"
	Cylinder50KG CylinderType = "50kg"
)

type Order struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	UserName         string        `json:"user_name,omitempty"`
	UserEmail        string        `json:"user_email,omitempty"`
	UserPhone        string        `json:"user_phone,omitempty"`
	ProviderID       string        `json:"provider_id,omitempty"`
	ProviderName     string        `json:"provider_name,omitempty"`
	CourierID        string        `json:"courier_id,omitempty"`
	CourierName      string        `json:"courier_name,omitempty"`
	CourierPhone     string        `json:"courier_phone,omitempty"`
	Status           OrderStatus   `json:"status"`
	CourierStatus    CourierStatus `json:"courier_status"`
	CylinderType     CylinderType  `json:"cylinder_type"`
	Quantity         int           `json:"quantity"`
	PricePerUnit     float64       `json:"price_per_unit"`
	TotalPrice       float64       `json:"total_price"`
	DeliveryFee      float64       `json:"delivery_fee"`
	ServiceCharge    float64       `json:"service_charge"`
	GrandTotal       float64       `json:"grand_total"`
	DeliveryAddress  string        `json:"delivery_address"`
	DeliveryMethod   string        `json:"delivery_method,omitempty"`
	PaymentMethod    string        `json:"payment_method"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentRef       string        `json:"payment_ref,omitempty"`
	PaymentProvider  string        `json:"payment_provider,omitempty"`
	CurrentLatitude  *float64      `json:"current_latitude,omitempty"`
	CurrentLongitude *float64      `json:"current_longitude,omitempty"`
	CurrentAddress   string        `json:"current_address,omitempty"`
	RideLink         string        `json:"ride_link,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("invalid order status: %s", s)
}

// ParseCylinderType normalizes "13KG" and "13kg"; unknown sizes are kept verbatim.
func ParseCylinderType(s string) CylinderType {
	return CylinderType(strings.ToLower(strings.TrimSpace(s)))
}

// IsTerminal reports whether no further status transition is legal.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusRejected, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// RoundCurrency rounds to two decimals, half away from zero.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

func ComputeGrandTotal(totalPrice, deliveryFee, serviceCharge float64) float64 {
	return RoundCurrency(totalPrice + deliveryFee + serviceCharge)
}

// CheckTotals cross-checks grand_total against its components at currency precision.
func (o *Order) CheckTotals() error {
	want := ComputeGrandTotal(o.TotalPrice, o.DeliveryFee, o.ServiceCharge)
	if RoundCurrency(o.GrandTotal) != want {
		return fmt.Errorf("%w: order %s grand_total %.2f, expected %.2f", ErrTotalsMismatch, o.ID, o.GrandTotal, want)
	}
	return nil
}

// RecomputeTotals derives total_price from unit price and quantity when a unit price is
// known, then recomputes grand_total.
func (o *Order) RecomputeTotals() {
	if o.PricePerUnit > 0 && o.Quantity > 0 {
		o.TotalPrice = RoundCurrency(o.PricePerUnit * float64(o.Quantity))
	}
	o.GrandTotal = ComputeGrandTotal(o.TotalPrice, o.DeliveryFee, o.ServiceCharge)
}

// NeedsReassignment is true when the courier declined and the order is still live.
func (o *Order) NeedsReassignment() bool {
	return o.CourierStatus == CourierStatusRejected &&
		(o.Status == OrderStatusPending || o.Status == OrderStatusAccepted)
}

func (o *Order) HasCourier() bool {
	return o.CourierID != ""
}

// CourierEarnings is the delivery fee once the order was delivered.
func (o *Order) CourierEarnings() float64 {
	if o.Status != OrderStatusDelivered {
		return 0
	}
	return RoundCurrency(o.DeliveryFee)
}

// CourierSummary is the courier dashboard's view over its orders.
type CourierSummary struct {
	PendingOffers int     `json:"pending_offers"`
	Active        int     `json:"active"`
	Completed     int     `json:"completed"`
	Earnings      float64 `json:"earnings"`
}

func SummarizeCourierOrders(orders []Order) CourierSummary {
	var s CourierSummary
	for i := range orders {
		o := &orders[i]
		switch {
		case o.Status == OrderStatusDelivered:
			s.Completed++
			s.Earnings += o.CourierEarnings()
		case o.Status.IsTerminal():
		case o.CourierStatus == CourierStatusPending:
			s.PendingOffers++
		case o.CourierStatus == CourierStatusAccepted:
			s.Active++
		}
	}
	s.Earnings = RoundCurrency(s.Earnings)
	return s
}
