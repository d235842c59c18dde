package models

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of principal roles. The zero value is not a
// valid role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGestor  Role = "gestor"
	RoleUsuario Role = "usuario"
)

// AllRoles lists every valid role in display order.
var AllRoles = []Role{RoleAdmin, RoleGestor, RoleUsuario}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleGestor, RoleUsuario:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Label is the Portuguese label shown next to the signed-in user.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleGestor:
		return "Gestor"
	case RoleUsuario:
		return "Colaborador"
	}
	return string(r)
}

// UnmarshalJSON rejects roles outside the closed set, so a stored principal
// with a foreign role fails to decode.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RoleSet is an unordered set of roles.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) Empty() bool { return len(s) == 0 }

// Roles returns the members in AllRoles order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s))
	for _, r := range AllRoles {
		if s.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}
