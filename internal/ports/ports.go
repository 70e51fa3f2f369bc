// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/zamgas/zamgas-client/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// StoragePort is durable key/value storage for the session. Multi-key writes and
// removals are all-or-nothing; removing an absent key is not an error.
type StoragePort interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItems(ctx context.Context, items map[string]string) error
	RemoveItems(ctx context.Context, keys ...string) error
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type AuthAPIPort interface {
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error)
	SignOut(ctx context.Context) error
	AdminMe(ctx context.Context) (*domain.User, error)
}

type OrderAPIPort interface {
	ListOrders(ctx context.Context, role domain.UserType) ([]domain.Order, error)
	AcceptOrder(ctx context.Context, orderID string) error
	RejectOrder(ctx context.Context, orderID string) error
	AcceptAssignment(ctx context.Context, orderID string) error
	DeclineAssignment(ctx context.Context, orderID string) error
	UpdateCourierStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	AssignCourier(ctx context.Context, orderID, courierID string) error
	CancelOrder(ctx context.Context, orderID, reason string) error
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) error
}

type PaymentAPIPort interface {
	InitiateDeposit(ctx context.Context, orderID string, amount float64, phoneNumber string) (string, error)
	DepositStatus(ctx context.Context, depositID string) (*domain.DepositStatus, error)
}
