package account

import (
	"context"
	"sort"
	"strings"
	"sync"

	domainaccount "github.com/amirasaad/finance/pkg/domain/account"
	repo "github.com/amirasaad/finance/pkg/repository/account"
)

// MemoryRepository keeps accounts in process memory. Unlike the SQL store it
// is lossless: types, currency and the active flag survive a round trip.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domainaccount.Account
}

var _ repo.Repository = (*MemoryRepository)(nil)

// NewMemory returns an empty in-memory repository.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*domainaccount.Account)}
}

// Save stores a. An existing createdAt is kept and the stored account is returned.
func (r *MemoryRepository) Save(_ context.Context, a *domainaccount.Account) (*domainaccount.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.accounts[a.ID()]; ok && !prev.CreatedAt().Equal(a.CreatedAt()) {
		// createdAt is fixed at insert.
		kept, err := a.ToBuilder().WithCreatedAt(prev.CreatedAt()).Build()
		if err != nil {
			return nil, err
		}
		r.accounts[a.ID()] = kept
		return kept, nil
	}
	r.accounts[a.ID()] = a
	return a, nil
}

// FindByID implements account.Repository.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*domainaccount.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accounts[id], nil
}

// FindAll implements account.Repository.
func (r *MemoryRepository) FindAll(_ context.Context) ([]*domainaccount.Account, error) {
	return r.filter(func(*domainaccount.Account) bool { return true }), nil
}

// FindActive implements account.Repository.
func (r *MemoryRepository) FindActive(_ context.Context) ([]*domainaccount.Account, error) {
	return r.filter((*domainaccount.Account).IsActive), nil
}

// FindByType implements account.Repository.
func (r *MemoryRepository) FindByType(_ context.Context, t domainaccount.Type) ([]*domainaccount.Account, error) {
	return r.filter(func(a *domainaccount.Account) bool { return a.Type() == t }), nil
}

// FindByName implements account.Repository.
func (r *MemoryRepository) FindByName(_ context.Context, query string) ([]*domainaccount.Account, error) {
	q := strings.ToLower(query)
	return r.filter(func(a *domainaccount.Account) bool {
		return strings.Contains(strings.ToLower(a.Name()), q)
	}), nil
}

// Delete implements account.Repository.
func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return false, nil
	}
	delete(r.accounts, id)
	return true, nil
}

// Count implements account.Repository.
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts), nil
}

// CountActive implements account.Repository.
func (r *MemoryRepository) CountActive(ctx context.Context) (int, error) {
	active, err := r.FindActive(ctx)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

func (r *MemoryRepository) filter(keep func(*domainaccount.Account) bool) []*domainaccount.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainaccount.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() == out[j].Name() {
			return out[i].ID() < out[j].ID()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}
