// Package auth carries caller identity between the gateway and the services.
package auth

import (
	"net/http"
	"strings"

	"food-marketplace/apperr"

	"github.com/google/uuid"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleSeller   Role = "Seller"
	RoleAdmin    Role = "Admin"
)

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, nil
	case "seller":
		return RoleSeller, nil
	case "admin":
		return RoleAdmin, nil
	}
	return "", apperr.Validation("unknown role %q", s)
}

type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) Is(role Role) bool {
	return i.Role == role
}

// FromRequest reads the identity headers set by the gateway.
func FromRequest(r *http.Request) (Identity, error) {
	rawID := r.Header.Get(HeaderUserID)
	if rawID == "" {
		return Identity{}, apperr.ErrUnauthorized
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return Identity{}, apperr.ErrUnauthorized
	}
	role, err := ParseRole(r.Header.Get(HeaderUserRole))
	if err != nil {
		return Identity{}, apperr.ErrUnauthorized
	}
	return Identity{UserID: userID, Role: role}, nil
}

// Require resolves the identity and checks it holds one of roles. An empty roles list accepts any role.
func Require(r *http.Request, roles ...Role) (Identity, error) {
	id, err := FromRequest(r)
	if err != nil {
		return Identity{}, err
	}
	if len(roles) == 0 {
		return id, nil
	}
	for _, role := range roles {
		if id.Role == role {
			return id, nil
		}
	}
	return Identity{}, apperr.Forbidden("role %s may not perform this action", id.Role)
}

func SetHeaders(h http.Header, id Identity) {
	h.Set(HeaderUserID, id.UserID.String())
	h.Set(HeaderUserRole, string(id.Role))
}

func StripHeaders(h http.Header) {
	h.Del(HeaderUserID)
	h.Del(HeaderUserRole)
}
