// internal/adapters/rest/endpoints.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zamgas/zamgas-client/internal/domain"
)

const adminOrdersPageSize = 100

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	var resp struct {
		User  *domain.User `json:"user"`
		Token string       `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signin", signInRequest{email, password}, &resp); err != nil {
		return nil, "", err
	}
	if resp.User == nil || resp.Token == "" {
		return nil, "", errors.New("signin: response is missing user or token")
	}
	return resp.User, resp.Token, nil
}

// adminProfile is the admin object returned by /admin/login and /admin/me. The
// platform sends the permission list as "permissions"; "admin_permissions" is
// read when that is absent.
type adminProfile struct {
	domain.User
	Permissions []string `json:"permissions"`
}

func (p *adminProfile) user() *domain.User {
	u := p.User.Clone()
	if p.Permissions != nil {
		u.AdminPermissions = append([]string(nil), p.Permissions...)
	}
	u.UserType = domain.UserTypeAdmin
	return u
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error) {
	var resp struct {
		Admin *adminProfile `json:"admin"`
		Token string        `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/login", signInRequest{email, password}, &resp); err != nil {
		return nil, "", err
	}
	if resp.Admin == nil || resp.Token == "" {
		return nil, "", errors.New("admin login: response is missing admin or token")
	}
	return resp.Admin.user(), resp.Token, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/auth/signout", nil, nil)
}

// AdminMe returns the admin profile behind the current token.
func (c *Client) AdminMe(ctx context.Context) (*domain.User, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/admin/me", nil)
	if err != nil {
		return nil, err
	}
	var wrapped struct {
		Admin *adminProfile `json:"admin"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Admin != nil {
		return wrapped.Admin.user(), nil
	}
	var bare adminProfile
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("GET /admin/me: decode response: %w", err)
	}
	return bare.user(), nil
}

func ordersPath(role domain.UserType) (string, error) {
	switch role {
	case domain.UserTypeCustomer:
		return "/user/orders", nil
	case domain.UserTypeProvider:
		return "/provider/orders", nil
	case domain.UserTypeCourier:
		return "/courier/orders", nil
	case domain.UserTypeAdmin:
		q := url.Values{}
		q.Set("page", "1")
		q.Set("limit", fmt.Sprint(adminOrdersPageSize))
		return "/admin/orders?" + q.Encode(), nil
	}
	return "", fmt.Errorf("no order list for user type %q", role)
}

func (c *Client) ListOrders(ctx context.Context, role domain.UserType) ([]domain.Order, error) {
	path, err := ordersPath(role)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	orders, err := decodeOrders(raw)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	return orders, nil
}

// decodeOrders accepts a bare array or an object wrapping it under orders or data.
func decodeOrders(raw []byte) ([]domain.Order, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '[' {
		var orders []domain.Order
		if err := json.Unmarshal(raw, &orders); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		return orders, nil
	}
	var wrapped struct {
		Orders json.RawMessage `json:"orders"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	switch {
	case len(wrapped.Orders) > 0:
		return decodeOrders(wrapped.Orders)
	case len(wrapped.Data) > 0:
		return decodeOrders(wrapped.Data)
	}
	return nil, nil
}

func (c *Client) AcceptOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPut, "/provider/orders/"+url.PathEscape(orderID)+"/accept", nil, nil)
}

func (c *Client) RejectOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPut, "/provider/orders/"+url.PathEscape(orderID)+"/reject", nil, nil)
}

func (c *Client) AcceptAssignment(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPut, "/courier/orders/"+url.PathEscape(orderID)+"/accept-assignment", nil, nil)
}

func (c *Client) DeclineAssignment(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPut, "/courier/orders/"+url.PathEscape(orderID)+"/decline-assignment", nil, nil)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (c *Client) UpdateCourierStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return c.do(ctx, http.MethodPut, "/courier/orders/"+url.PathEscape(orderID)+"/update-status", statusRequest{status}, nil)
}

func (c *Client) AssignCourier(ctx context.Context, orderID, courierID string) error {
	body := struct {
		CourierID string `json:"courier_id"`
	}{courierID}
	return c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(orderID)+"/assign-courier", body, nil)
}

func (c *Client) CancelOrder(ctx context.Context, orderID, reason string) error {
	body := struct {
		Reason string `json:"reason"`
	}{reason}
	return c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(orderID)+"/cancel", body, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(orderID)+"/status", statusRequest{status}, nil)
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) error {
	body := struct {
		PaymentStatus domain.PaymentStatus `json:"payment_status"`
	}{status}
	return c.do(ctx, http.MethodPut, "/user/orders/"+url.PathEscape(orderID)+"/payment-status", body, nil)
}

func (c *Client) InitiateDeposit(ctx context.Context, orderID string, amount float64, phoneNumber string) (string, error) {
	body := struct {
		OrderID     string  `json:"order_id"`
		Amount      float64 `json:"amount"`
		PhoneNumber string  `json:"phone_number"`
	}{orderID, amount, phoneNumber}
	var resp struct {
		DepositID    string `json:"depositId"`
		DepositIDAlt string `json:"deposit_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/payments/deposit", body, &resp); err != nil {
		return "", err
	}
	id := resp.DepositID
	if id == "" {
		id = resp.DepositIDAlt
	}
	if id == "" {
		return "", errors.New("deposit: response is missing depositId")
	}
	return id, nil
}

func (c *Client) DepositStatus(ctx context.Context, depositID string) (*domain.DepositStatus, error) {
	path := "/payments/status/" + url.PathEscape(depositID)
	raw, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	st, err := ParseDepositStatus(raw)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if st.DepositID == "" {
		st.DepositID = depositID
	}
	return st, nil
}
