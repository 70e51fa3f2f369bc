// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/domain"
	"github.com/zamgas/zamgas-client/internal/ports"
)

const orderCachePrefix = "orders:"

// OrderService runs role actions against the platform. Every action is checked
// against the transition table before a request is sent.
type OrderService struct {
	api     ports.OrderAPIPort
	cache   ports.CachePort
	session *SessionService
	log     log.FieldLogger
}

func NewOrderService(api ports.OrderAPIPort, cache ports.CachePort, session *SessionService, logger log.FieldLogger) *OrderService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &OrderService{api: api, cache: cache, session: session, log: logger.WithField("component", "orders")}
}

func ordersCacheKey(u *domain.User) string {
	return fmt.Sprintf("%s%s:%s", orderCachePrefix, u.UserType, u.ID)
}

func (s *OrderService) currentUser() (*domain.User, error) {
	snap := s.session.Snapshot()
	if !snap.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return snap.User, nil
}

// ListOrders returns the caller's orders from cache or from the endpoint for its role.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	user, err := s.currentUser()
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() && !user.HasPermission(domain.PermissionViewOrders) {
		return nil, fmt.Errorf("%w: %s is required", domain.ErrForbidden, domain.PermissionViewOrders)
	}

	key := ordersCacheKey(user)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var orders []domain.Order
			if err := json.Unmarshal(data, &orders); err == nil {
				return orders, nil
			}
		}
	}

	orders, err := s.api.ListOrders(ctx, user.UserType)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if err := orders[i].CheckTotals(); err != nil {
			s.log.WithField("order_id", orders[i].ID).WithError(err).Warn("order totals do not add up")
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, orders); err != nil {
			s.log.WithError(err).Debug("failed to cache orders")
		}
	}
	return orders, nil
}

// Refresh drops cached lists and reads again.
func (s *OrderService) Refresh(ctx context.Context) ([]domain.Order, error) {
	s.invalidate(ctx)
	return s.ListOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
}

// CourierSummary aggregates the courier dashboard counters.
func (s *OrderService) CourierSummary(ctx context.Context) (domain.CourierSummary, error) {
	user, err := s.currentUser()
	if err != nil {
		return domain.CourierSummary{}, err
	}
	if user.UserType != domain.UserTypeCourier {
		return domain.CourierSummary{}, fmt.Errorf("%w: courier only", domain.ErrForbidden)
	}
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return domain.CourierSummary{}, err
	}
	return domain.SummarizeCourierOrders(orders), nil
}

func (s *OrderService) Accept(ctx context.Context, o domain.Order) (*domain.Order, error) {
	return s.perform(ctx, o, domain.ActionAccept, domain.Params{}, func(ctx context.Context) error {
		return s.api.AcceptOrder(ctx, o.ID)
	})
}

func (s *OrderService) Reject(ctx context.Context, o domain.Order) (*domain.Order, error) {
	return s.perform(ctx, o, domain.ActionReject, domain.Params{}, func(ctx context.Context) error {
		return s.api.RejectOrder(ctx, o.ID)
	})
}

func (s *OrderService) AcceptAssignment(ctx context.Context, o domain.Order) (*domain.Order, error) {
	return s.perform(ctx, o, domain.ActionAcceptAssignment, domain.Params{}, func(ctx context.Context) error {
		return s.api.AcceptAssignment(ctx, o.ID)
	})
}

func (s *OrderService) DeclineAssignment(ctx context.Context, o domain.Order) (*domain.Order, error) {
	return s.perform(ctx, o, domain.ActionDeclineAssignment, domain.Params{}, func(ctx context.Context) error {
		return s.api.DeclineAssignment(ctx, o.ID)
	})
}

// MarkDelivered also returns what the courier earned on the order.
func (s *OrderService) MarkDelivered(ctx context.Context, o domain.Order) (*domain.Order, float64, error) {
	next, err := s.perform(ctx, o, domain.ActionMarkDelivered, domain.Params{}, func(ctx context.Context) error {
		return s.api.UpdateCourierStatus(ctx, o.ID, domain.OrderStatusDelivered)
	})
	if err != nil {
		return nil, 0, err
	}
	return next, next.CourierEarnings(), nil
}

func (s *OrderService) StartTransit(ctx context.Context, o domain.Order) (*domain.Order, error) {
	return s.perform(ctx, o, domain.ActionStartTransit, domain.Params{}, func(ctx context.Context) error {
		return s.api.UpdateOrderStatus(ctx, o.ID, domain.OrderStatusInTransit)
	})
}

func (s *OrderService) AssignCourier(ctx context.Context, o domain.Order, courierID string) (*domain.Order, error) {
	courierID = strings.TrimSpace(courierID)
	return s.perform(ctx, o, domain.ActionAssignCourier, domain.Params{CourierID: courierID}, func(ctx context.Context) error {
		return s.api.AssignCourier(ctx, o.ID, courierID)
	})
}

func (s *OrderService) Cancel(ctx context.Context, o domain.Order, reason string) (*domain.Order, error) {
	reason = strings.TrimSpace(reason)
	return s.perform(ctx, o, domain.ActionCancel, domain.Params{Reason: reason}, func(ctx context.Context) error {
		return s.api.CancelOrder(ctx, o.ID, reason)
	})
}

func (s *OrderService) authorize(action domain.Action) error {
	user, err := s.currentUser()
	if err != nil {
		return err
	}
	role, ok := domain.RoleFor(action)
	if !ok || user.UserType != role {
		return fmt.Errorf("%w: %s cannot %s", domain.ErrForbidden, user.UserType, action)
	}
	if user.IsAdmin() && !user.HasPermission(domain.PermissionEditOrders) {
		return fmt.Errorf("%w: %s is required", domain.ErrForbidden, domain.PermissionEditOrders)
	}
	return nil
}

// perform validates locally, calls the platform, then returns the authoritative
// order. If the order left the caller's list, the locally applied state is returned.
func (s *OrderService) perform(ctx context.Context, o domain.Order, action domain.Action, p domain.Params, call func(context.Context) error) (*domain.Order, error) {
	if err := s.authorize(action); err != nil {
		return nil, err
	}
	next, err := domain.Apply(o, action, p)
	if err != nil {
		return nil, err
	}
	if err := call(ctx); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.log.WithFields(log.Fields{"order_id": o.ID, "action": action}).Info("order updated")

	fresh, err := s.GetOrder(ctx, o.ID)
	if err != nil {
		s.log.WithField("order_id", o.ID).WithError(err).Debug("using local order state after update")
		return &next, nil
	}
	return fresh, nil
}

func (s *OrderService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, orderCachePrefix); err != nil {
		s.log.WithError(err).Warn("failed to invalidate order cache")
	}
}

// HandleEvent drops cached lists when the platform reports an order or payment change.
func (s *OrderService) HandleEvent(ctx context.Context, ev domain.Event) {
	if ev.Type.IsOrderEvent() || ev.Type == domain.EventPaymentUpdate {
		s.log.WithFields(log.Fields{"event": ev.Type, "order_id": ev.OrderID}).Debug("order event")
		s.invalidate(ctx)
	}
}
