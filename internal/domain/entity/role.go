package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownRole = errors.New("unknown role")

type roleKind int

const (
	roleKindNone roleKind = iota
	roleKindPatient
	roleKindLoggedPatient
	roleKindDoctor
	roleKindAdmin
)

// Role is the client-side tag that drives UI branching. It is a closed set:
// the only values are the package-level Role constants below.
type Role struct {
	kind roleKind
}

var (
	RoleNone          = Role{kind: roleKindNone}
	RolePatient       = Role{kind: roleKindPatient}
	RoleLoggedPatient = Role{kind: roleKindLoggedPatient}
	RoleDoctor        = Role{kind: roleKindDoctor}
	RoleAdmin         = Role{kind: roleKindAdmin}
)

// Role tags as persisted in the session store
const (
	RoleTagPatient       = "patient"
	RoleTagLoggedPatient = "loggedPatient"
	RoleTagDoctor        = "doctor"
	RoleTagAdmin         = "admin"
)

// RoleVisitor has one method per role. Every branch on a role goes through
// MatchRole, so a new role does not compile until each visitor handles it.
type RoleVisitor[T any] interface {
	None() T
	Patient() T
	LoggedPatient() T
	Doctor() T
	Admin() T
}

func MatchRole[T any](r Role, v RoleVisitor[T]) T {
	switch r.kind {
	case roleKindPatient:
		return v.Patient()
	case roleKindLoggedPatient:
		return v.LoggedPatient()
	case roleKindDoctor:
		return v.Doctor()
	case roleKindAdmin:
		return v.Admin()
	default:
		return v.None()
	}
}

type roleTagVisitor struct{}

func (roleTagVisitor) None() string          { return "" }
func (roleTagVisitor) Patient() string       { return RoleTagPatient }
func (roleTagVisitor) LoggedPatient() string { return RoleTagLoggedPatient }
func (roleTagVisitor) Doctor() string        { return RoleTagDoctor }
func (roleTagVisitor) Admin() string         { return RoleTagAdmin }

// String returns the storage tag, empty for RoleNone.
func (r Role) String() string {
	return MatchRole[string](r, roleTagVisitor{})
}

type authenticatedVisitor struct{}

func (authenticatedVisitor) None() bool          { return false }
func (authenticatedVisitor) Patient() bool       { return false }
func (authenticatedVisitor) LoggedPatient() bool { return true }
func (authenticatedVisitor) Doctor() bool        { return true }
func (authenticatedVisitor) Admin() bool         { return true }

// Authenticated reports whether the role requires a bearer token.
func (r Role) Authenticated() bool {
	return MatchRole[bool](r, authenticatedVisitor{})
}

func ParseRole(tag string) (Role, error) {
	switch tag {
	case "":
		return RoleNone, nil
	case RoleTagPatient:
		return RolePatient, nil
	case RoleTagLoggedPatient:
		return RoleLoggedPatient, nil
	case RoleTagDoctor:
		return RoleDoctor, nil
	case RoleTagAdmin:
		return RoleAdmin, nil
	}
	return RoleNone, fmt.Errorf("%w: %q", ErrUnknownRole, tag)
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
