// internal/adapters/realtime/subscriber.go
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/domain"
)

const (
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10

	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// Handler receives every decoded event in arrival order.
type Handler func(ctx context.Context, ev domain.Event)

type TokenFunc func() string

// Subscriber listens to the platform's event stream.
type Subscriber struct {
	url    string
	token  TokenFunc
	dialer *websocket.Dialer
	log    log.FieldLogger
}

func NewSubscriber(wsURL string, token TokenFunc, logger log.FieldLogger) *Subscriber {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Subscriber{
		url:    wsURL,
		token:  token,
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second, Proxy: http.ProxyFromEnvironment},
		log:    logger.WithField("component", "realtime"),
	}
}

// Run holds one connection until ctx ends or the connection drops. It returns nil
// only when ctx was cancelled.
func (s *Subscriber) Run(ctx context.Context, handle Handler) error {
	header := http.Header{}
	if s.token != nil {
		if tok := s.token(); tok != "" {
			header.Set("Authorization", "Bearer "+tok)
		}
	}
	conn, resp, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("dial %s: %w", s.url, domain.ErrUnauthorized)
		}
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("%w: dial %s: %v", domain.ErrNetwork, s.url, err)
	}
	defer conn.Close()
	s.log.WithField("url", s.url).Info("connected to event stream")

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(writeWait)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			conn.Close()
		case <-stop:
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("%w: event stream closed", domain.ErrNetwork)
			}
			return fmt.Errorf("%w: read event: %v", domain.ErrNetwork, err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var ev domain.Event
		if err := json.Unmarshal(data, &ev); err != nil || ev.Type == "" {
			s.log.WithField("bytes", len(data)).Debug("skipping malformed event")
			continue
		}
		handle(ctx, ev)
	}
}

// Listen keeps reconnecting with backoff until ctx ends or the server refuses the token.
func (s *Subscriber) Listen(ctx context.Context, handle Handler) error {
	backoff := minBackoff
	for {
		start := time.Now()
		err := s.Run(ctx, handle)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		if time.Since(start) > maxBackoff {
			backoff = minBackoff
		}
		s.log.WithError(err).WithField("retry_in", backoff).Warn("event stream lost")

		t := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case <-t.C:
		}
		if backoff *= 2; backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}
