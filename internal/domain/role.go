package domain

// Role is the closed set of account roles.
type Role string

const (
	RoleUser Role = "user"
	RoleHR   Role = "humanResources"
)

// Roles lists every valid role in declaration order.
var Roles = []Role{RoleUser, RoleHR}

// Canonical allow-lists used by route authorization.
var (
	UserOnly = []Role{RoleUser}
	HROnly   = []Role{RoleHR}
	UserOrHR = []Role{RoleUser, RoleHR}
)

// Allowed reports whether r is a member of allowed.
func (r Role) Allowed(allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Presence is the online status of an account.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
)
