package accounts

import (
	"context"
	"sync"

	"github.com/microfarm/accounts/internal/common"
	"github.com/microfarm/accounts/internal/server/models"
)

// inMemoryConstraintMessage mirrors the text a storage layer emits for an
// email uniqueness violation, so the in-memory repository exercises the same
// error-forwarding path as a real database.
const inMemoryConstraintMessage = "UNIQUE constraint failed: accounts.email"

// InMemoryRepository is a map-backed Repository used in tests. It mirrors
// Postgres semantics: duplicate detection on email, status-scoped lookups,
// and a conditional pending->active flip.
type InMemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]*models.Account)}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, &common.AlreadyExistsError{Message: inMemoryConstraintMessage}
	}

	r.byEmail[account.Email] = clone(account)
	return account, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(account), nil
}

func (r *InMemoryRepository) GetByEmailAndStatus(ctx context.Context, email string, status models.AccountStatus) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[email]
	if !ok || account.Status != status {
		return nil, common.ErrorNotFound
	}
	return clone(account), nil
}

func (r *InMemoryRepository) Activate(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.byEmail {
		if account.ID == id {
			if account.Status != models.StatusPending {
				return false, nil
			}
			account.Status = models.StatusActive
			return true, nil
		}
	}
	return false, nil
}

// clone returns a copy so callers cannot mutate stored state through the
// returned record.
func clone(a *models.Account) *models.Account {
	c := *a
	c.Secret = append([]byte(nil), a.Secret...)
	return &c
}
