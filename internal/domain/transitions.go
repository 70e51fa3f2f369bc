// internal/domain/transitions.go
package domain

import (
	"fmt"
	"strings"
)

// Action is a role-initiated order mutation.
type Action string

const (
	ActionAccept            Action = "accept"
	ActionReject            Action = "reject"
	ActionAcceptAssignment  Action = "accept_assignment"
	ActionDeclineAssignment Action = "decline_assignment"
	ActionStartTransit      Action = "start_transit"
	ActionMarkDelivered     Action = "mark_delivered"
	ActionAssignCourier     Action = "assign_courier"
	ActionCancel            Action = "cancel"
)

// allActions is the order AllowedActions reports in.
var allActions = []Action{
	ActionAccept, ActionReject,
	ActionAcceptAssignment, ActionDeclineAssignment, ActionStartTransit, ActionMarkDelivered,
	ActionAssignCourier, ActionCancel,
}

var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusAccepted:  {OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusInTransit: {OrderStatusDelivered, OrderStatusCancelled},
}

var courierTransitions = map[CourierStatus][]CourierStatus{
	CourierStatusNone:     {CourierStatusPending},
	CourierStatusPending:  {CourierStatusAccepted, CourierStatusRejected},
	CourierStatusRejected: {CourierStatusPending},
}

// actionRoles lists which user type performs each action.
var actionRoles = map[Action]UserType{
	ActionAccept:            UserTypeProvider,
	ActionReject:            UserTypeProvider,
	ActionAcceptAssignment:  UserTypeCourier,
	ActionDeclineAssignment: UserTypeCourier,
	ActionMarkDelivered:     UserTypeCourier,
	ActionStartTransit:      UserTypeAdmin,
	ActionAssignCourier:     UserTypeAdmin,
	ActionCancel:            UserTypeAdmin,
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CanTransitionCourier(from, to CourierStatus) bool {
	for _, s := range courierTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// RoleFor returns the user type allowed to perform the action.
func RoleFor(a Action) (UserType, bool) {
	t, ok := actionRoles[a]
	return t, ok
}

// Params carries the arguments some actions need.
type Params struct {
	CourierID string
	Reason    string
}

// Check reports whether the action is legal on the order as it is now.
// It does not look at action arguments, see Apply.
func Check(o Order, a Action) error {
	if !legal(o, a) {
		return &TransitionError{OrderID: o.ID, Action: a, Status: o.Status, CourierStatus: o.CourierStatus}
	}
	return nil
}

func legal(o Order, a Action) bool {
	switch a {
	case ActionAccept:
		return CanTransition(o.Status, OrderStatusAccepted) && o.Status == OrderStatusPending
	case ActionReject:
		return CanTransition(o.Status, OrderStatusRejected) && o.Status == OrderStatusPending
	case ActionAcceptAssignment:
		return !o.Status.IsTerminal() && o.HasCourier() && CanTransitionCourier(o.CourierStatus, CourierStatusAccepted)
	case ActionDeclineAssignment:
		return !o.Status.IsTerminal() && o.HasCourier() && CanTransitionCourier(o.CourierStatus, CourierStatusRejected)
	case ActionStartTransit:
		return CanTransition(o.Status, OrderStatusInTransit) && o.CourierStatus == CourierStatusAccepted
	case ActionMarkDelivered:
		return CanTransition(o.Status, OrderStatusDelivered) && o.CourierStatus == CourierStatusAccepted
	case ActionAssignCourier:
		if o.Status.IsTerminal() {
			return false
		}
		return !o.HasCourier() || o.CourierStatus == CourierStatusRejected
	case ActionCancel:
		return CanTransition(o.Status, OrderStatusCancelled)
	}
	return false
}

// Apply returns the order as it looks after the action. The input is not modified.
func Apply(o Order, a Action, p Params) (Order, error) {
	if err := Check(o, a); err != nil {
		return o, err
	}
	next := o
	switch a {
	case ActionAccept:
		next.Status = OrderStatusAccepted
		next.CourierStatus = CourierStatusPending
	case ActionReject:
		next.Status = OrderStatusRejected
	case ActionAcceptAssignment:
		next.CourierStatus = CourierStatusAccepted
	case ActionDeclineAssignment:
		next.CourierStatus = CourierStatusRejected
	case ActionStartTransit:
		next.Status = OrderStatusInTransit
	case ActionMarkDelivered:
		next.Status = OrderStatusDelivered
	case ActionAssignCourier:
		if strings.TrimSpace(p.CourierID) == "" {
			return o, fmt.Errorf("%w: courier id is required", ErrValidation)
		}
		next.CourierID = p.CourierID
		next.CourierName = ""
		next.CourierPhone = ""
		next.CourierStatus = CourierStatusPending
	case ActionCancel:
		if strings.TrimSpace(p.Reason) == "" {
			return o, ErrReasonRequired
		}
		next.Status = OrderStatusCancelled
	}
	return next, nil
}

// AllowedActions lists what the given role may do to the order right now.
func AllowedActions(o Order, role UserType) []Action {
	var out []Action
	for _, a := range allActions {
		if actionRoles[a] == role && legal(o, a) {
			out = append(out, a)
		}
	}
	return out
}
