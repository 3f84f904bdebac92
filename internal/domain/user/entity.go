package user

import (
	"time"

	"github.com/google/uuid"
)

// Account covers guests, hosts and admins; the role decides which
// operations (listing management vs booking) are permitted.
type Account struct {
	id           uuid.UUID
	username     Username
	displayName  DisplayName
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewAccount(username Username, displayName DisplayName, passwordHash string, role Role, now time.Time) *Account {
	return &Account{
		id:           uuid.New(),
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}
}

func ReconstructAccount(id uuid.UUID, username Username, displayName DisplayName, passwordHash string, role Role, createdAt time.Time) *Account {
	return &Account{
		id:           id,
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID            { return a.id }
func (a *Account) Username() Username       { return a.username }
func (a *Account) DisplayName() DisplayName { return a.displayName }
func (a *Account) PasswordHash() string     { return a.passwordHash }
func (a *Account) Role() Role               { return a.role }
func (a *Account) CreatedAt() time.Time     { return a.createdAt }

func (a *Account) IsHost() bool { return a.role == RoleHost }
