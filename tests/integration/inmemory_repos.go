package integration

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Wallet Repo ---

// inMemoryWalletRepo mimics the postgres adapter including its partial
// unique indexes: live surname uniqueness and at most one live default per
// user are enforced at every write, so racing writers fail the same way
// they would against the real schema.
type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]domain.Wallet)}
}

func (r *inMemoryWalletRepo) FindByID(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[walletID]
	if !ok || w.UserID != userID || w.IsDeleted() {
		return nil, nil
	}
	copied := w
	return &copied, nil
}

func (r *inMemoryWalletRepo) FindAny(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && !w.IsDeleted() {
			copied := w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) FindBySurname(ctx context.Context, userID uuid.UUID, surname string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.Surname == surname && !w.IsDeleted() {
			copied := w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) FindDefault(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.IsDefault && !w.IsDeleted() {
			copied := w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) FindPage(ctx context.Context, userID uuid.UUID, surname *string, page ports.PageRequest) ([]domain.Wallet, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Wallet
	for _, w := range r.wallets {
		if w.UserID != userID || w.IsDeleted() {
			continue
		}
		if surname != nil && w.Surname != *surname {
			continue
		}
		matched = append(matched, w)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		var less bool
		switch page.Sort {
		case ports.SortByCreatedAt:
			less = a.CreatedAt.Before(b.CreatedAt)
		case ports.SortByUpdatedAt:
			at, bt := a.CreatedAt, b.CreatedAt
			if a.UpdatedAt != nil {
				at = *a.UpdatedAt
			}
			if b.UpdatedAt != nil {
				bt = *b.UpdatedAt
			}
			less = at.Before(bt)
		case ports.SortByMinBalance:
			less = a.MinBalance.LessThan(b.MinBalance)
		default:
			less = strings.Compare(a.Surname, b.Surname) < 0
		}
		if page.Direction == ports.SortDesc {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := page.Page * page.Size
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryWalletRepo) Save(ctx context.Context, w *domain.Wallet) error {
	return r.SaveAll(ctx, []*domain.Wallet{w})
}

func (r *inMemoryWalletRepo) SaveAll(ctx context.Context, wallets []*domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := make(map[uuid.UUID]*domain.Wallet, len(wallets))
	for _, w := range wallets {
		if old, ok := r.wallets[w.ID]; ok {
			copied := old
			previous[w.ID] = &copied
		} else {
			previous[w.ID] = nil
		}
		r.wallets[w.ID] = *w
	}

	if err := r.checkConstraintsLocked(); err != nil {
		for id, old := range previous {
			if old == nil {
				delete(r.wallets, id)
			} else {
				r.wallets[id] = *old
			}
		}
		return err
	}
	return nil
}

func (r *inMemoryWalletRepo) checkConstraintsLocked() error {
	type surnameKey struct {
		user    uuid.UUID
		surname string
	}
	surnames := make(map[surnameKey]bool)
	defaults := make(map[uuid.UUID]bool)

	for _, w := range r.wallets {
		if w.IsDeleted() {
			continue
		}
		k := surnameKey{user: w.UserID, surname: w.Surname}
		if surnames[k] {
			return fmt.Errorf("unique violation: surname %q for user %s", w.Surname, w.UserID)
		}
		surnames[k] = true

		if w.IsDefault {
			if defaults[w.UserID] {
				return fmt.Errorf("unique violation: second default wallet for user %s", w.UserID)
			}
			defaults[w.UserID] = true
		}
	}
	return nil
}

// liveCount reports how many live wallets the user holds, for invariant
// assertions.
func (r *inMemoryWalletRepo) liveCount(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, w := range r.wallets {
		if w.UserID == userID && !w.IsDeleted() {
			n++
		}
	}
	return n
}

// defaultCount reports how many live default wallets the user holds.
func (r *inMemoryWalletRepo) defaultCount(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, w := range r.wallets {
		if w.UserID == userID && w.IsDefault && !w.IsDeleted() {
			n++
		}
	}
	return n
}

// --- Capturing Dispatcher ---

// capturingDispatcher records every dispatched wallet snapshot.
type capturingDispatcher struct {
	mu     sync.Mutex
	events []domain.Wallet
}

func newCapturingDispatcher() *capturingDispatcher {
	return &capturingDispatcher{}
}

func (d *capturingDispatcher) Dispatch(w *domain.Wallet) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, *w)
	return nil
}

func (d *capturingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}

func (d *capturingDispatcher) countFor(walletID uuid.UUID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, e := range d.events {
		if e.ID == walletID {
			n++
		}
	}
	return n
}

func (d *capturingDispatcher) last() *domain.Wallet {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.events) == 0 {
		return nil
	}
	copied := d.events[len(d.events)-1]
	return &copied
}
