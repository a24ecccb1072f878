package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/account"
)

// AccountRepository keeps accounts keyed by email, the natural lookup
// for login. There is no secondary id index; GetByID scans.
type AccountRepository struct {
	mu      sync.RWMutex
	byEmail map[string]account.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byEmail: make(map[string]account.Account)}
}

func (r *AccountRepository) Create(_ context.Context, a account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[a.Email]; ok {
		return account.ErrDuplicateEmail
	}
	r.byEmail[a.Email] = a
	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (r *AccountRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}
