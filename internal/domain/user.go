// internal/domain/user.go
package domain

import (
	"fmt"
	"time"
)

type UserType string
type AdminRole string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeProvider UserType = "provider"
	UserTypeCourier  UserType = "courier"
	UserTypeAdmin    UserType = "admin"
)

const (
	AdminRoleSuperAdmin AdminRole = "super_admin"
	AdminRoleManager    AdminRole = "manager"
	AdminRoleAnalyst    AdminRole = "analyst"
	AdminRoleSupport    AdminRole = "support"
)

// Admin permission strings. The set is open: any string can be granted and queried.
const (
	PermissionAll            = "*"
	PermissionViewDashboard  = "view_dashboard"
	PermissionViewAnalytics  = "view_analytics"
	PermissionViewUsers      = "view_users"
	PermissionEditUsers      = "edit_users"
	PermissionDeleteUsers    = "delete_users"
	PermissionViewOrders     = "view_orders"
	PermissionEditOrders     = "edit_orders"
	PermissionViewProviders  = "view_providers"
	PermissionEditProviders  = "edit_providers"
	PermissionViewCouriers   = "view_couriers"
	PermissionEditCouriers   = "edit_couriers"
	PermissionManageSettings = "manage_settings"
	PermissionViewReports    = "view_reports"
)

type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	UserType         UserType   `json:"user_type"`
	AdminRole        AdminRole  `json:"admin_role,omitempty"`
	AdminPermissions []string   `json:"admin_permissions,omitempty"`
	Rating           float64    `json:"rating,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	ProfileImage     string     `json:"profile_image,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCustomer, UserTypeProvider, UserTypeCourier, UserTypeAdmin:
		return true
	}
	return false
}

func (r AdminRole) IsValid() bool {
	switch r {
	case AdminRoleSuperAdmin, AdminRoleManager, AdminRoleAnalyst, AdminRoleSupport:
		return true
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == UserTypeAdmin
}

// HasPermission is false for every non-admin, whatever fields the record carries.
func (u *User) HasPermission(permission string) bool {
	if !u.IsAdmin() {
		return false
	}
	for _, p := range u.AdminPermissions {
		if p == permission || p == PermissionAll {
			return true
		}
	}
	return false
}

// Validate checks the user type and that admin fields only appear on admins.
func (u *User) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidSession)
	}
	if !u.UserType.IsValid() {
		return fmt.Errorf("%w: unknown user_type %q", ErrInvalidSession, u.UserType)
	}
	if u.UserType != UserTypeAdmin {
		if u.AdminRole != "" || len(u.AdminPermissions) > 0 {
			return fmt.Errorf("%w: admin fields on %s user", ErrInvalidSession, u.UserType)
		}
		return nil
	}
	if u.AdminRole != "" && !u.AdminRole.IsValid() {
		return fmt.Errorf("%w: unknown admin_role %q", ErrInvalidSession, u.AdminRole)
	}
	return nil
}

// Clone returns a deep copy so snapshots never share slices with the store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.AdminPermissions != nil {
		c.AdminPermissions = append([]string(nil), u.AdminPermissions...)
	}
	if u.Latitude != nil {
		lat := *u.Latitude
		c.Latitude = &lat
	}
	if u.Longitude != nil {
		lng := *u.Longitude
		c.Longitude = &lng
	}
	return &c
}
