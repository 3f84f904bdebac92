package commands

import (
	"context"

	"tourease/internal/domain/user"
	"tourease/internal/infra"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/errs"
	"tourease/internal/pkg/jwt"
	"tourease/internal/pkg/password"

	"github.com/google/uuid"
)

type SignUpInput struct {
	Username    string
	DisplayName string
	Password    string
	Role        string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	AccountID   uuid.UUID
	DisplayName string
	Role        string
	Token       string
}

type AccountWriteStore interface {
	Create(ctx context.Context, account *user.Account) error
	FindByUsername(ctx context.Context, username string) (*repository.AccountRecord, error)
}

type TokenIssuer interface {
	GenerateToken(accountID uuid.UUID, role user.Role) (string, error)
}

type AuthCommands interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

type authCommandsImpl struct {
	accounts AccountWriteStore
	tokens   TokenIssuer
	clock    clock.Clock
}

func NewAuthCommands(accounts AccountWriteStore, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{accounts: accounts, tokens: tokens, clock: clk}
}

func (c *authCommandsImpl) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, err
	}
	displayName, err := user.NewDisplayName(in.DisplayName)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	account := user.NewAccount(username, displayName, hash, role, c.clock.Now())
	if err := c.accounts.Create(ctx, account); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateUsername
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	token, err := c.tokens.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &AuthResult{
		AccountID:   account.ID(),
		DisplayName: account.DisplayName().String(),
		Role:        account.Role().String(),
		Token:       token,
	}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		// A malformed username can never match a stored account; do not
		// reveal which part of the pair was wrong.
		return nil, errs.ErrInvalidCredentials
	}

	rec, err := c.accounts.FindByUsername(ctx, username.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if err := password.ComparePassword(rec.PasswordHash, in.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(rec.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored account has invalid role")
	}

	token, err := c.tokens.GenerateToken(rec.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &AuthResult{
		AccountID:   rec.ID,
		DisplayName: rec.DisplayName,
		Role:        rec.Role,
		Token:       token,
	}, nil
}

// TokenValidator is the handler-side contract for bearer-token checks.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}
