// Package access maps staff roles onto permissions.
//
// Everything here is pure. The authenticated Session is always passed in by
// the caller; nothing reads a current user from ambient state.
package access

import (
	"errors"
	"fmt"
	"strings"

	"havenpos/internal/pkg/errs"
)

var ErrPermissionDenied = errors.New("permission denied")

type Role int

const (
	UnknownRole Role = iota
	Admin
	Manager
	Receptionist
	Waiter
	Kitchen
)

var roleNames = map[Role]string{
	Admin:        "admin",
	Manager:      "manager",
	Receptionist: "receptionist",
	Waiter:       "waiter",
	Kitchen:      "kitchen",
}

func ParseRole(raw string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for r, name := range roleNames {
		if name == needle {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

type Permission int

const (
	UserManagement Permission = iota + 1
	RoomManagement
	MenuManagement
	ReservationManagement
	POSAccess
	ReportsAccess
	SettingsAccess
	FinancialAccess
)

var permissionNames = map[Permission]string{
	UserManagement:        "user_management",
	RoomManagement:        "room_management",
	MenuManagement:        "menu_management",
	ReservationManagement: "reservation_management",
	POSAccess:             "pos_access",
	ReportsAccess:         "reports_access",
	SettingsAccess:        "settings_access",
	FinancialAccess:       "financial_access",
}

func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "unknown"
}

var rolePermissions = map[Role][]Permission{
	Admin: {
		UserManagement, RoomManagement, MenuManagement, ReservationManagement,
		POSAccess, ReportsAccess, SettingsAccess, FinancialAccess,
	},
	Manager: {
		RoomManagement, MenuManagement, ReservationManagement,
		POSAccess, ReportsAccess, FinancialAccess,
	},
	Receptionist: {ReservationManagement, RoomManagement},
	Waiter:       {POSAccess, MenuManagement},
	Kitchen:      {POSAccess},
}

// Permissions returns the role's permission set. The slice is a copy.
func (r Role) Permissions() []Permission {
	return append([]Permission(nil), rolePermissions[r]...)
}

// Session is the authenticated staff member behind a request or terminal.
type Session struct {
	UserID string
	Name   string
	Role   Role
}

func HasPermission(s Session, p Permission) bool {
	for _, granted := range rolePermissions[s.Role] {
		if granted == p {
			return true
		}
	}
	return false
}

// Require returns ErrPermissionDenied unless the session holds p.
func Require(s Session, p Permission) error {
	if HasPermission(s, p) {
		return nil
	}
	return fmt.Errorf("%w: role %s lacks %s", ErrPermissionDenied, s.Role, p)
}

var routePermissions = map[string]Permission{
	"/dashboard/admin":        UserManagement,
	"/dashboard/reservations": ReservationManagement,
	"/dashboard/pos":          POSAccess,
	"/dashboard/reports":      ReportsAccess,
	"/dashboard/settings":     SettingsAccess,
	"/dashboard/rooms":        RoomManagement,
	"/dashboard/menu":         MenuManagement,
	"/dashboard/financial":    FinancialAccess,
}

// CanAccessRoute checks a dashboard route. Routes without a rule are open.
func CanAccessRoute(s Session, route string) bool {
	required, ok := routePermissions[route]
	if !ok {
		return true
	}
	return HasPermission(s, required)
}

// Gate is the predicate the terminal consults before an action.
type Gate interface {
	Allow(s Session, p Permission) bool
}

// RoleGate grants by the static role table.
type RoleGate struct{}

func (RoleGate) Allow(s Session, p Permission) bool {
	return HasPermission(s, p)
}
