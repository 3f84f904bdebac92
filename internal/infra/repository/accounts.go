package repository

import (
	"context"
	"sync"

	"tourease/internal/domain/user"
	"tourease/internal/infra"
	"tourease/internal/infra/kvstore"

	"github.com/google/uuid"
)

// AccountRepository persists accounts as one whole collection, read-modify-
// written under a mutex; the store itself offers no finer granularity.
type AccountRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

func NewAccountRepository(store kvstore.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(ctx context.Context, account *user.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []AccountRecord
	if err := r.store.Load(ctx, kvstore.CollectionAccounts, &records); err != nil {
		return infra.WrapRepoErr("failed to load accounts", err)
	}

	username := account.Username().String()
	for _, rec := range records {
		if rec.Username == username {
			return infra.WrapRepoErr("username already taken", nil, infra.KindDuplicateKey)
		}
	}

	records = append(records, accountToRecord(account))
	if err := r.store.Save(ctx, kvstore.CollectionAccounts, records); err != nil {
		return infra.WrapRepoErr("failed to save accounts", err)
	}
	return nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*AccountRecord, error) {
	var records []AccountRecord
	if err := r.store.Load(ctx, kvstore.CollectionAccounts, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load accounts", err)
	}
	for i := range records {
		if records[i].Username == username {
			return &records[i], nil
		}
	}
	return nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*AccountRecord, error) {
	var records []AccountRecord
	if err := r.store.Load(ctx, kvstore.CollectionAccounts, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load accounts", err)
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
}
