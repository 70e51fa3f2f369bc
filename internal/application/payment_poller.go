// internal/application/payment_poller.go
package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/config"
	"github.com/zamgas/zamgas-client/internal/domain"
	"github.com/zamgas/zamgas-client/internal/ports"
)

// PaymentPoller confirms deposits by polling the status endpoint until the gateway
// reports a final status or the timeout passes. One deposit is polled at most once
// at a time.
type PaymentPoller struct {
	api ports.PaymentAPIPort
	cfg config.PollConfig
	log log.FieldLogger

	mu     sync.Mutex
	active map[string]struct{}
}

func NewPaymentPoller(api ports.PaymentAPIPort, cfg config.PollConfig, logger log.FieldLogger) *PaymentPoller {
	if logger == nil {
		logger = log.StandardLogger()
	}
	defaults := config.ProductionPoll()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.Timeout < cfg.Interval {
		cfg.Timeout = defaults.Timeout
		if cfg.Timeout < cfg.Interval {
			cfg.Timeout = cfg.Interval
		}
	}
	if cfg.ConfirmDelay < 0 {
		cfg.ConfirmDelay = 0
	}
	if cfg.TimeoutMessage == "" {
		cfg.TimeoutMessage = defaults.TimeoutMessage
	}
	return &PaymentPoller{
		api:    api,
		cfg:    cfg,
		log:    logger.WithField("component", "payment_poller"),
		active: make(map[string]struct{}),
	}
}

func (p *PaymentPoller) acquire(depositID string) error {
	if strings.TrimSpace(depositID) == "" {
		return fmt.Errorf("%w: deposit id is required", domain.ErrValidation)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.active[depositID]; busy {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyPolling, depositID)
	}
	p.active[depositID] = struct{}{}
	return nil
}

func (p *PaymentPoller) release(depositID string) {
	p.mu.Lock()
	delete(p.active, depositID)
	p.mu.Unlock()
}

// IsPolling reports whether a poll for the deposit is in progress.
func (p *PaymentPoller) IsPolling(depositID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.active[depositID]
	return ok
}

// Poll blocks until the deposit settles. A timeout is a failed outcome, not an
// error; the error is non-nil only for bad input, a duplicate poll or ctx ending.
// No request is issued after Poll returns.
func (p *PaymentPoller) Poll(ctx context.Context, depositID string) (domain.PaymentOutcome, error) {
	if err := p.acquire(depositID); err != nil {
		return domain.PaymentOutcome{DepositID: depositID}, err
	}
	defer p.release(depositID)
	return p.run(ctx, depositID)
}

func (p *PaymentPoller) run(ctx context.Context, depositID string) (domain.PaymentOutcome, error) {
	logger := p.log.WithField("deposit_id", depositID)
	outcome := domain.PaymentOutcome{DepositID: depositID, State: domain.PaymentPending}

	deadline := time.Now().Add(p.cfg.Timeout)
	timeout := time.NewTimer(p.cfg.Timeout)
	defer timeout.Stop()
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("polling cancelled")
			return outcome, ctx.Err()
		case <-timeout.C:
			outcome.State = domain.PaymentFailed
			outcome.Reason = domain.FailureTimeout
			outcome.Message = p.cfg.TimeoutMessage
			logger.WithField("attempts", outcome.Attempts).Warn("payment confirmation timed out")
			return outcome, nil
		case <-ticker.C:
		}

		outcome.Attempts++
		reqCtx, cancel := context.WithDeadline(ctx, deadline)
		st, err := p.api.DepositStatus(reqCtx, depositID)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return outcome, ctx.Err()
			}
			logger.WithError(err).WithField("attempt", outcome.Attempts).Warn("status check failed, retrying")
			continue
		}

		switch st.Status {
		case domain.GatewayCompleted:
			if p.cfg.ConfirmDelay > 0 {
				wait := time.NewTimer(p.cfg.ConfirmDelay)
				select {
				case <-ctx.Done():
					wait.Stop()
					return outcome, ctx.Err()
				case <-wait.C:
				}
			}
			outcome.State = domain.PaymentSuccess
			logger.WithField("attempts", outcome.Attempts).Info("payment completed")
			return outcome, nil
		case domain.GatewayFailed, domain.GatewayRejected:
			outcome.State = domain.PaymentFailed
			outcome.Reason = domain.FailureGateway
			outcome.Message = st.Message
			if outcome.Message == "" {
				outcome.Message = domain.DefaultPaymentFailureMessage
			}
			logger.WithFields(log.Fields{"status": st.Status, "message": outcome.Message}).Warn("payment failed")
			return outcome, nil
		default:
			logger.WithField("status", st.Status).Debug("payment pending")
		}
	}
}

// PollTask is a poll running in the background.
type PollTask struct {
	DepositID string

	cancel  context.CancelFunc
	done    chan struct{}
	outcome domain.PaymentOutcome
	err     error
}

// Start polls in a goroutine. The duplicate check happens before Start returns.
func (p *PaymentPoller) Start(ctx context.Context, depositID string) (*PollTask, error) {
	if err := p.acquire(depositID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	task := &PollTask{DepositID: depositID, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(task.done)
		defer p.release(depositID)
		defer cancel()
		task.outcome, task.err = p.run(ctx, depositID)
	}()
	return task, nil
}

func (t *PollTask) Done() <-chan struct{} { return t.done }

// Cancel stops the poll; Outcome then reports context.Canceled.
func (t *PollTask) Cancel() { t.cancel() }

// Outcome waits for the poll to finish.
func (t *PollTask) Outcome() (domain.PaymentOutcome, error) {
	<-t.done
	return t.outcome, t.err
}
