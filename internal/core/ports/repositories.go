package ports

import (
	"context"

	"wallet-service/internal/core/domain"

	"github.com/google/uuid"
)

// SortField names a wallet attribute usable for result ordering.
type SortField string

const (
	SortBySurname    SortField = "surname"
	SortByCreatedAt  SortField = "created_at"
	SortByUpdatedAt  SortField = "updated_at"
	SortByMinBalance SortField = "min_balance"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageRequest carries pagination and sorting for paged wallet queries.
type PageRequest struct {
	Page      int
	Size      int
	Sort      SortField
	Direction SortDirection
}

// Normalized returns a copy with the documented defaults applied:
// page 0, size 20, sorted by surname ascending.
func (p PageRequest) Normalized() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 20
	}
	switch p.Sort {
	case SortBySurname, SortByCreatedAt, SortByUpdatedAt, SortByMinBalance:
	default:
		p.Sort = SortBySurname
	}
	if p.Direction != SortDesc {
		p.Direction = SortAsc
	}
	return p
}

// WalletRepository defines persistence operations for wallets. Every query
// is scoped to live records (deleted_at IS NULL); soft-deleted rows stay in
// storage for audit but are invisible here. Lookups return (nil, nil) when
// no live record matches.
type WalletRepository interface {
	// FindByID fetches a single live wallet scoped to its owner.
	FindByID(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error)
	// FindAny fetches any live wallet for the user. Used as an existence
	// probe: a user with no wallet at all is treated as unknown.
	FindAny(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	// FindBySurname fetches the live wallet holding the given normalized
	// surname, if any.
	FindBySurname(ctx context.Context, userID uuid.UUID, surname string) (*domain.Wallet, error)
	// FindDefault fetches the live wallet flagged as default, if any.
	FindDefault(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	// FindPage returns one page of the user's live wallets plus the total
	// live count, optionally filtered to an exact normalized surname.
	FindPage(ctx context.Context, userID uuid.UUID, surname *string, page PageRequest) ([]domain.Wallet, int64, error)
	// Save inserts or fully updates a single wallet record.
	Save(ctx context.Context, wallet *domain.Wallet) error
	// SaveAll writes a batch of wallet records; either all writes are
	// applied or the operation reports failure.
	SaveAll(ctx context.Context, wallets []*domain.Wallet) error
}
