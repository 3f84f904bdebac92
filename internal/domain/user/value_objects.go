package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername    = errors.New("username must be 3-30 characters of letters, digits, . _ or -")
	ErrInvalidDisplayName = errors.New("display name cannot be empty")
	ErrInvalidRole        = errors.New("invalid role")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,30}$`)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if !usernamePattern.MatchString(t) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: t}, nil
}

func (u Username) String() string { return u.value }

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: t}, nil
}

func (d DisplayName) String() string { return d.value }

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleHost, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }
