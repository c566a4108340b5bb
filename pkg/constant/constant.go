package constant

// Roles known to the platform. Tokens never carry anything outside this set.
const (
	RoleTodoUser     = "todoUser"
	RoleSystemAdmin  = "systemAdmin"
	RoleGuestVisitor = "guestVisitor"
)

// Actor categories for session revocation records.
const (
	RevokedByUser   = "user"
	RevokedBySystem = "system"
)

// Revocation reasons.
const (
	ReasonLogout          = "logout"
	ReasonUserRequest     = "revoked_by_user"
	ReasonPasswordChanged = "password_changed"
	ReasonTokenReuse      = "token_reuse_detected"
	ReasonAdminForce      = "admin_force_logout"
)

// User account statuses.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// Todo statuses and activity actions.
const (
	TodoStatusOpen = "open"
	TodoStatusDone = "done"

	TodoActionCreated   = "created"
	TodoActionUpdated   = "updated"
	TodoActionCompleted = "completed"
	TodoActionDeleted   = "deleted"
)

func ValidRole(role string) bool {
	switch role {
	case RoleTodoUser, RoleSystemAdmin, RoleGuestVisitor:
		return true
	}
	return false
}
