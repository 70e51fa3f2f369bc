// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamgas/zamgas-client/internal/adapters/rest"
	"github.com/zamgas/zamgas-client/internal/domain"
)

// platform is a tiny stand-in for the provider side of the REST API.
type platform struct {
	mu     sync.Mutex
	status domain.OrderStatus
	token  string
}

func (p *platform) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"Invalid email or password"}`)
			return
		}
		fmt.Fprintf(w, `{"token":%q,"user":{"id":"p1","email":%q,"name":"Lusaka Gas","user_type":"provider"}}`, p.currentToken(), body.Email)
	})
	mux.HandleFunc("/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/provider/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+p.currentToken() {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"token expired"}`)
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		fmt.Fprintf(w, `{"orders":[{"id":"o1","status":%q,"courier_status":"","cylinder_type":"13kg","quantity":2,
			"total_price":1300,"delivery_fee":10,"service_charge":5,"grand_total":1315,"payment_status":"pending"}]}`, p.status)
	})
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"token":%q,"admin":{"id":"a1","email":"ops@zamgas.zm","name":"Ops Desk","admin_role":"manager","permissions":["view_orders","edit_orders"]}}`, p.currentToken())
	})
	mux.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+p.currentToken(), r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"orders":[{"id":"o9","status":"pending","courier_status":"","cylinder_type":"6kg","quantity":1,
			"total_price":400,"delivery_fee":10,"service_charge":5,"grand_total":415,"payment_status":"pending"}]}`)
	})
	mux.HandleFunc("/provider/orders/o1/accept", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		p.mu.Lock()
		p.status = domain.OrderStatusAccepted
		p.mu.Unlock()
		fmt.Fprint(w, `{}`)
	})
	return mux
}

func (p *platform) rotateToken(tok string) {
	p.mu.Lock()
	p.token = tok
	p.mu.Unlock()
}

func (p *platform) currentToken() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

type harness struct{}

func newHarness(t *testing.T, p *platform) harness {
	t.Helper()
	srv := httptest.NewServer(p.handler(t))
	t.Cleanup(srv.Close)
	t.Setenv("ZAMGAS_API_URL", srv.URL)
	t.Setenv("ZAMGAS_STORAGE", "file")
	t.Setenv("ZAMGAS_STORAGE_PATH", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("ZAMGAS_LOG_LEVEL", "error")
	return harness{}
}

func (h harness) run(stdin string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCLI_ProviderFlow(t *testing.T) {
	h := newHarness(t, &platform{status: domain.OrderStatusPending, token: "tok-1"})

	code, out, _ := h.run("secret1\n", "signin", "--email", "gas@example.com")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Signed in as Lusaka Gas (provider)")

	code, out, _ = h.run("", "whoami")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Lusaka Gas <gas@example.com>")

	code, out, _ = h.run("", "orders", "list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "o1")
	assert.Contains(t, out, "K1315.00")
	assert.Contains(t, out, "accept,reject")

	code, out, _ = h.run("", "orders", "accept", "o1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Order o1 is now accepted")

	code, _, errOut := h.run("", "orders", "accept", "o1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "accept")

	code, out, _ = h.run("", "signout")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Signed out")

	code, _, errOut = h.run("", "whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not signed in")
}

func TestCLI_AdminLoginKeepsPermissions(t *testing.T) {
	h := newHarness(t, &platform{token: "admin-tok"})

	code, out, errOut := h.run("", "admin", "login", "--email", "ops@zamgas.zm", "--password", "secret1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Signed in as Ops Desk (admin, manager)")

	code, out, _ = h.run("", "whoami")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "permissions: view_orders, edit_orders")

	code, out, errOut = h.run("", "orders", "list")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "o9")
	assert.Contains(t, out, "cancel")
}

func TestCLI_APIURLFlagOverridesEnvironment(t *testing.T) {
	p := &platform{token: "tok-1"}
	h := newHarness(t, p)
	srvURL := os.Getenv("ZAMGAS_API_URL")
	t.Setenv("ZAMGAS_API_URL", "http://127.0.0.1:1")

	code, out, errOut := h.run("", "--api-url", srvURL, "signin", "--email", "gas@example.com", "--password", "secret1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Signed in as Lusaka Gas")
}

func TestCLI_BadPasswordShowsServerMessage(t *testing.T) {
	h := newHarness(t, &platform{token: "tok-1"})

	code, _, errOut := h.run("", "signin", "--email", "gas@example.com", "--password", "wrong-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Invalid email or password")
}

func TestCLI_ExpiredSessionIsCleared(t *testing.T) {
	p := &platform{status: domain.OrderStatusPending, token: "tok-1"}
	h := newHarness(t, p)

	code, _, _ := h.run("", "signin", "--email", "gas@example.com", "--password", "secret1")
	require.Equal(t, 0, code)

	p.rotateToken("tok-2")
	code, _, errOut := h.run("", "orders", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "session has expired")

	code, _, errOut = h.run("", "whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not signed in")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		expired bool
		want    string
	}{
		{"signed out", domain.ErrNotAuthenticated, false, "not signed in"},
		{"expired", &rest.APIError{StatusCode: 401, Message: "jwt expired"}, true, "session has expired"},
		{"login failure", &rest.APIError{StatusCode: 401, Message: "Invalid email or password"}, false, "Invalid email or password"},
		{"local permission", fmt.Errorf("%w: edit_orders is required", domain.ErrForbidden), false, "not allowed"},
		{"server forbidden", &rest.APIError{StatusCode: 403, Message: "Admins only"}, false, "Admins only"},
		{"network", fmt.Errorf("%w: dial tcp", domain.ErrNetwork), false, "cannot reach"},
		{"cancelled", context.Canceled, false, "cancelled"},
		{"server error", &rest.APIError{StatusCode: 502, Message: "Bad Gateway"}, false, "try again shortly"},
		{"account rejected at sign in", fmt.Errorf("%w: unknown user_type %q", domain.ErrInvalidSession, "vendor"), false, "cannot be used"},
		{"validation", &domain.ValidationError{Fields: map[string]string{"email": "is required"}}, false, "email: is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, describe(tt.err, tt.expired), tt.want)
		})
	}
}
