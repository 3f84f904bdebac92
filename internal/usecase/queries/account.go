package queries

import (
	"context"
	"time"

	"tourease/internal/infra"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/errs"

	"github.com/google/uuid"
)

// AccountView never carries the password hash.
type AccountView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type AccountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.AccountRecord, error)
}

type AccountQueries interface {
	GetCurrent(ctx context.Context, id uuid.UUID) (*AccountView, error)
}

type accountQueriesImpl struct {
	accounts AccountReadStore
}

func NewAccountQueries(accounts AccountReadStore) AccountQueries {
	return &accountQueriesImpl{accounts: accounts}
}

func (q *accountQueriesImpl) GetCurrent(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	rec, err := q.accounts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return ToAccountView(rec), nil
}

func ToAccountView(rec *repository.AccountRecord) *AccountView {
	return &AccountView{
		ID:          rec.ID,
		Username:    rec.Username,
		DisplayName: rec.DisplayName,
		Role:        rec.Role,
		CreatedAt:   rec.CreatedAt,
	}
}
