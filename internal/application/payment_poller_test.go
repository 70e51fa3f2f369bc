// internal/application/payment_poller_test.go
package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamgas/zamgas-client/internal/config"
	"github.com/zamgas/zamgas-client/internal/domain"
	"github.com/zamgas/zamgas-client/internal/logging"
	"github.com/zamgas/zamgas-client/internal/ports"
)

func fastPoll() config.PollConfig {
	return config.PollConfig{
		Interval:       5 * time.Millisecond,
		Timeout:        300 * time.Millisecond,
		TimeoutMessage: "Payment timeout - please check your phone",
	}
}

func status(s domain.GatewayStatus, msg string) *domain.DepositStatus {
	return &domain.DepositStatus{DepositID: "dep-1", Status: s, Message: msg}
}

func TestPaymentPoller_Poll(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(api *ports.MockPaymentAPIPort)
		state     domain.PaymentState
		reason    domain.FailureReason
		message   string
		attempts  int
	}{
		{
			name: "Completed on first check",
			mockSetup: func(api *ports.MockPaymentAPIPort) {
				api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayCompleted, ""), nil)
			},
			state:    domain.PaymentSuccess,
			attempts: 1,
		},
		{
			name: "Failed on third check",
			mockSetup: func(api *ports.MockPaymentAPIPort) {
				gomock.InOrder(
					api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayProcessing, ""), nil),
					api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayProcessing, ""), nil),
					api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayFailed, "INSUFFICIENT_BALANCE"), nil),
				)
			},
			state:    domain.PaymentFailed,
			reason:   domain.FailureGateway,
			message:  "INSUFFICIENT_BALANCE",
			attempts: 3,
		},
		{
			name: "Rejected without message",
			mockSetup: func(api *ports.MockPaymentAPIPort) {
				api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayRejected, ""), nil)
			},
			state:    domain.PaymentFailed,
			reason:   domain.FailureGateway,
			message:  domain.DefaultPaymentFailureMessage,
			attempts: 1,
		},
		{
			name: "Transport errors are retried",
			mockSetup: func(api *ports.MockPaymentAPIPort) {
				gomock.InOrder(
					api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(nil, domain.ErrNetwork),
					api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(nil, errors.New("502 bad gateway")),
					api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayCompleted, ""), nil),
				)
			},
			state:    domain.PaymentSuccess,
			attempts: 3,
		},
		{
			name: "Never settles",
			mockSetup: func(api *ports.MockPaymentAPIPort) {
				api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewaySubmitted, ""), nil).AnyTimes()
			},
			state:   domain.PaymentFailed,
			reason:  domain.FailureTimeout,
			message: "Payment timeout - please check your phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := ports.NewMockPaymentAPIPort(ctrl)
			tt.mockSetup(api)
			poller := NewPaymentPoller(api, fastPoll(), logging.Discard())

			outcome, err := poller.Poll(context.Background(), "dep-1")
			require.NoError(t, err)
			assert.Equal(t, tt.state, outcome.State)
			assert.Equal(t, tt.reason, outcome.Reason)
			assert.Equal(t, tt.message, outcome.Message)
			if tt.attempts > 0 {
				assert.Equal(t, tt.attempts, outcome.Attempts)
			}
			assert.False(t, poller.IsPolling("dep-1"))

			// nothing may be requested once Poll has returned
			time.Sleep(4 * fastPoll().Interval)
		})
	}
}

func TestPaymentPoller_TimeoutOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := ports.NewMockPaymentAPIPort(ctrl)
	api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayProcessing, ""), nil).AnyTimes()
	cfg := fastPoll()
	cfg.Timeout = 50 * time.Millisecond
	cfg.TimeoutMessage = config.SandboxPoll().TimeoutMessage

	outcome, err := NewPaymentPoller(api, cfg, logging.Discard()).Poll(context.Background(), "dep-1")
	require.NoError(t, err)
	assert.True(t, outcome.TimedOut())
	assert.False(t, outcome.Succeeded())
	assert.Contains(t, outcome.Message, "Sandbox")
}

func TestPaymentPoller_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := ports.NewMockPaymentAPIPort(ctrl)
	api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayProcessing, ""), nil).AnyTimes()
	cfg := fastPoll()
	cfg.Timeout = time.Minute
	poller := NewPaymentPoller(api, cfg, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	outcome, err := poller.Poll(ctx, "dep-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.PaymentPending, outcome.State)
	assert.False(t, poller.IsPolling("dep-1"))
}

func TestPaymentPoller_ConfirmDelayIsCancelable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := ports.NewMockPaymentAPIPort(ctrl)
	api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayCompleted, ""), nil)
	cfg := fastPoll()
	cfg.ConfirmDelay = time.Minute
	poller := NewPaymentPoller(api, cfg, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := poller.Poll(ctx, "dep-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPaymentPoller_SinglePollPerDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := ports.NewMockPaymentAPIPort(ctrl)
	api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayEnqueued, ""), nil).AnyTimes()
	cfg := fastPoll()
	cfg.Timeout = time.Minute
	poller := NewPaymentPoller(api, cfg, logging.Discard())

	task, err := poller.Start(context.Background(), "dep-1")
	require.NoError(t, err)
	assert.True(t, poller.IsPolling("dep-1"))

	_, err = poller.Poll(context.Background(), "dep-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyPolling)
	_, err = poller.Start(context.Background(), "dep-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyPolling)

	task.Cancel()
	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("poll did not stop after Cancel")
	}
	_, err = task.Outcome()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, poller.IsPolling("dep-1"))
}

func TestPaymentPoller_StartReportsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := ports.NewMockPaymentAPIPort(ctrl)
	api.EXPECT().DepositStatus(gomock.Any(), "dep-1").Return(status(domain.GatewayCompleted, ""), nil)
	poller := NewPaymentPoller(api, fastPoll(), logging.Discard())

	task, err := poller.Start(context.Background(), "dep-1")
	require.NoError(t, err)
	outcome, err := task.Outcome()
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, "dep-1", outcome.DepositID)
}

func TestNewPaymentPoller_NormalizesConfig(t *testing.T) {
	prod := config.ProductionPoll()
	tests := []struct {
		name string
		in   config.PollConfig
		want config.PollConfig
	}{
		{"zero value", config.PollConfig{}, prod},
		{
			name: "negative interval and delay",
			in:   config.PollConfig{Interval: -time.Second, Timeout: time.Minute, ConfirmDelay: -time.Second},
			want: config.PollConfig{Interval: prod.Interval, Timeout: time.Minute, TimeoutMessage: prod.TimeoutMessage},
		},
		{
			name: "timeout shorter than interval",
			in:   config.PollConfig{Interval: 5 * time.Minute, Timeout: time.Second, TimeoutMessage: "late"},
			want: config.PollConfig{Interval: 5 * time.Minute, Timeout: 5 * time.Minute, TimeoutMessage: "late"},
		},
		{"valid config kept", fastPoll(), fastPoll()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaymentPoller(nil, tt.in, logging.Discard()).cfg)
		})
	}
}

func TestPaymentPoller_StartWithZeroConfigDoesNotPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := ports.NewMockPaymentAPIPort(ctrl)
	poller := NewPaymentPoller(api, config.PollConfig{}, logging.Discard())

	task, err := poller.Start(context.Background(), "dep-1")
	require.NoError(t, err)
	task.Cancel()
	_, err = task.Outcome()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPaymentPoller_EmptyDeposit(t *testing.T) {
	poller := NewPaymentPoller(nil, fastPoll(), logging.Discard())
	_, err := poller.Poll(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
