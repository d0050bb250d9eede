package auth

import (
	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/errors"
)

// ResolveIdentity turns the ambient user context into the explicit identity
// triple the chat core works with. A nil user means the access-control layer
// upstream failed its job; that is a contract violation, not a user error.
func ResolveIdentity(user *domain.Identity) (domain.Identity, error) {
	if user == nil || user.ID == "" {
		return domain.Identity{}, errors.ErrUnauthenticated
	}
	role := user.Role
	if role != domain.RoleDriver {
		role = domain.RolePassenger
	}
	return domain.Identity{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Role:        role,
	}, nil
}
