// internal/application/payment_service.go
package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/domain"
	"github.com/zamgas/zamgas-client/internal/ports"
)

var zambianPhoneRegex = regexp.MustCompile(`^\+?260\d{9}$`)

// NormalizePhone strips whitespace and the leading plus the gateway does not expect.
func NormalizePhone(phone string) string {
	phone = strings.Join(strings.Fields(phone), "")
	return strings.TrimPrefix(phone, "+")
}

func ValidPhone(phone string) bool {
	return zambianPhoneRegex.MatchString(strings.Join(strings.Fields(phone), ""))
}

// PaymentService pays an order with mobile money and waits for confirmation.
type PaymentService struct {
	api      ports.PaymentAPIPort
	orderAPI ports.OrderAPIPort
	orders   *OrderService
	poller   *PaymentPoller
	session  *SessionService
	log      log.FieldLogger
}

func NewPaymentService(api ports.PaymentAPIPort, orderAPI ports.OrderAPIPort, orders *OrderService, poller *PaymentPoller, session *SessionService, logger log.FieldLogger) *PaymentService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &PaymentService{
		api:      api,
		orderAPI: orderAPI,
		orders:   orders,
		poller:   poller,
		session:  session,
		log:      logger.WithField("component", "payments"),
	}
}

func (s *PaymentService) validate(o domain.Order, phone string) error {
	var v domain.ValidationError
	if o.ID == "" {
		v.Add("order", "is required")
	}
	if o.PaymentStatus == domain.PaymentStatusPaid {
		v.Add("order", "is already paid")
	}
	if domain.RoundCurrency(o.GrandTotal) <= 0 {
		v.Add("amount", "must be positive")
	}
	switch {
	case strings.TrimSpace(phone) == "":
		v.Add("phone_number", "is required")
	case !ValidPhone(phone):
		v.Add("phone_number", "must be a Zambian number (+260...)")
	}
	return v.Err()
}

// PayForOrder starts a deposit for the order's grand total and polls it to a result.
// On success the order is marked paid, best effort.
func (s *PaymentService) PayForOrder(ctx context.Context, o domain.Order, phone string) (domain.PaymentOutcome, error) {
	if !s.session.IsAuthenticated() {
		return domain.PaymentOutcome{}, domain.ErrNotAuthenticated
	}
	if err := s.validate(o, phone); err != nil {
		return domain.PaymentOutcome{}, err
	}
	if err := o.CheckTotals(); err != nil {
		s.log.WithField("order_id", o.ID).WithError(err).Warn("paying order with inconsistent totals")
	}

	amount := domain.RoundCurrency(o.GrandTotal)
	depositID, err := s.api.InitiateDeposit(ctx, o.ID, amount, NormalizePhone(phone))
	if err != nil {
		return domain.PaymentOutcome{}, fmt.Errorf("initiate deposit: %w", err)
	}
	s.log.WithFields(log.Fields{"order_id": o.ID, "deposit_id": depositID, "amount": amount}).Info("deposit initiated")

	outcome, err := s.poller.Poll(ctx, depositID)
	if err != nil {
		return outcome, err
	}
	if outcome.Succeeded() {
		if err := s.orderAPI.UpdatePaymentStatus(ctx, o.ID, domain.PaymentStatusPaid); err != nil {
			s.log.WithField("order_id", o.ID).WithError(err).Warn("failed to record payment on order")
		}
		if s.orders != nil {
			s.orders.HandleEvent(ctx, domain.Event{Type: domain.EventPaymentUpdate, OrderID: o.ID})
		}
	}
	return outcome, nil
}

// Status looks a deposit up once without polling.
func (s *PaymentService) Status(ctx context.Context, depositID string) (*domain.DepositStatus, error) {
	if strings.TrimSpace(depositID) == "" {
		return nil, fmt.Errorf("%w: deposit id is required", domain.ErrValidation)
	}
	return s.api.DepositStatus(ctx, depositID)
}
