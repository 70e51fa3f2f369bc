// internal/domain/payment.go
package domain

// GatewayStatus is the deposit status reported by the mobile-money gateway.
type GatewayStatus string

const (
	GatewayAccepted   GatewayStatus = "ACCEPTED"
	GatewaySubmitted  GatewayStatus = "SUBMITTED"
	GatewayEnqueued   GatewayStatus = "ENQUEUED"
	GatewayProcessing GatewayStatus = "PROCESSING"
	GatewayCompleted  GatewayStatus = "COMPLETED"
	GatewayFailed     GatewayStatus = "FAILED"
	GatewayRejected   GatewayStatus = "REJECTED"
)

// IsFinal is true for the statuses that end polling.
func (s GatewayStatus) IsFinal() bool {
	return s == GatewayCompleted || s == GatewayFailed || s == GatewayRejected
}

type Deposit struct {
	DepositID   string  `json:"depositId"`
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	PhoneNumber string  `json:"phone_number"`
}

// DepositStatus is the normalized answer of the payment status endpoint.
type DepositStatus struct {
	DepositID string
	Status    GatewayStatus
	Message   string
}

type PaymentState string

const (
	PaymentPending PaymentState = "pending"
	PaymentSuccess PaymentState = "success"
	PaymentFailed  PaymentState = "failed"
)

type FailureReason string

const (
	FailureGateway FailureReason = "gateway"
	FailureTimeout FailureReason = "timeout"
)

const DefaultPaymentFailureMessage = "Payment failed"

// PaymentOutcome is the terminal result of confirming one deposit.
type PaymentOutcome struct {
	DepositID string
	State     PaymentState
	Reason    FailureReason
	Message   string
	Attempts  int
}

func (o PaymentOutcome) Succeeded() bool { return o.State == PaymentSuccess }

func (o PaymentOutcome) TimedOut() bool {
	return o.State == PaymentFailed && o.Reason == FailureTimeout
}
