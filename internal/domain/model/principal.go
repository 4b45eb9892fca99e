package model

import "github.com/google/uuid"

// Role is the coarse authorization level attached to a principal.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// Principal is the authenticated caller as resolved by the upstream auth
// gateway. A nil *Principal means the request is anonymous.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// IsPrivileged reports whether the principal may bypass ownership checks.
func (p *Principal) IsPrivileged() bool {
	return p != nil && p.Role == RoleModerator
}

// CanModify reports whether the principal may mutate an entity owned by
// ownerID: it must be the owner or hold a privileged role.
func (p *Principal) CanModify(ownerID uuid.UUID) bool {
	if p == nil {
		return false
	}
	return p.UserID == ownerID || p.IsPrivileged()
}
