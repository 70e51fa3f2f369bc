// internal/domain/user_test.go
package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasPermission(t *testing.T) {
	manager := &User{
		ID: "a1", UserType: UserTypeAdmin, AdminRole: AdminRoleManager,
		AdminPermissions: []string{PermissionViewUsers, PermissionEditUsers},
	}
	superAdmin := &User{ID: "a0", UserType: UserTypeAdmin, AdminRole: AdminRoleSuperAdmin, AdminPermissions: []string{PermissionAll}}
	// a customer record carrying stray admin fields must still be denied
	customer := &User{ID: "u1", UserType: UserTypeCustomer, AdminPermissions: []string{PermissionViewUsers}}

	tests := []struct {
		name string
		user *User
		perm string
		want bool
	}{
		{"granted", manager, PermissionEditUsers, true},
		{"not granted", manager, PermissionDeleteUsers, false},
		{"wildcard", superAdmin, PermissionManageSettings, true},
		{"non admin", customer, PermissionViewUsers, false},
		{"nil user", nil, PermissionViewUsers, false},
		{"empty permission", manager, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.HasPermission(tt.perm); got != tt.want {
				t.Errorf("HasPermission(%q) = %v, want %v", tt.perm, got, tt.want)
			}
		})
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{"customer", &User{UserType: UserTypeCustomer}, false},
		{"admin with role", &User{UserType: UserTypeAdmin, AdminRole: AdminRoleSupport}, false},
		{"admin without role", &User{UserType: UserTypeAdmin}, false},
		{"nil", nil, true},
		{"unknown type", &User{UserType: "driver"}, true},
		{"courier with role", &User{UserType: UserTypeCourier, AdminRole: AdminRoleManager}, true},
		{"provider with permissions", &User{UserType: UserTypeProvider, AdminPermissions: []string{PermissionViewOrders}}, true},
		{"unknown role", &User{UserType: UserTypeAdmin, AdminRole: "owner"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSession) {
				t.Errorf("Validate() error = %v, want ErrInvalidSession", err)
			}
		})
	}
}

func TestUser_CloneIsDeep(t *testing.T) {
	lat := -15.4
	u := &User{ID: "a1", UserType: UserTypeAdmin, AdminPermissions: []string{PermissionViewUsers}, Latitude: &lat}
	c := u.Clone()
	c.AdminPermissions[0] = PermissionAll
	*c.Latitude = 0

	assert.Equal(t, PermissionViewUsers, u.AdminPermissions[0])
	assert.Equal(t, -15.4, *u.Latitude)
	assert.Nil(t, (*User)(nil).Clone())
}

func TestValidationError(t *testing.T) {
	var v ValidationError
	assert.True(t, v.Empty())
	assert.NoError(t, v.Err())

	v.Add("password", "must be at least 6 characters")
	v.Add("email", "is required")
	err := v.Err()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: email: is required, password: must be at least 6 characters", err.Error())
}
