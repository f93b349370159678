package ports

import (
	"context"

	"wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateWalletInput is the payload of the wallet creation command. A nil
// pointer at the service boundary means the payload was absent.
type CreateWalletInput struct {
	Surname    string
	IsActive   *bool
	MinBalance *decimal.Decimal
}

// UpdateWalletInput is the payload of the full-update command; every field
// is required and replaces the current value.
type UpdateWalletInput struct {
	Surname            string
	IsActive           bool
	MinBalance         decimal.Decimal
	AcceptBankTransfer bool
	AcceptPayments     bool
	AcceptWithdrawing  bool
	AcceptDeposit      bool
}

// PatchWalletInput is the payload of the partial-update command; absent
// fields keep their current values.
type PatchWalletInput struct {
	Surname            *string
	IsActive           *bool
	MinBalance         *decimal.Decimal
	AcceptBankTransfer *bool
	AcceptPayments     *bool
	AcceptWithdrawing  *bool
	AcceptDeposit      *bool
}

// SearchWalletsInput carries the read-only listing parameters.
type SearchWalletsInput struct {
	Surname *string
	Page    PageRequest
}

// WalletPage is one page of live wallets plus the bookkeeping callers need
// to iterate.
type WalletPage struct {
	Content   []domain.Wallet `json:"content"`
	Page      int             `json:"page"`
	Size      int             `json:"size"`
	Total     int64           `json:"total"`
	PageCount int             `json:"page_count"`
	SortedBy  string          `json:"sorted_by"`
}

// WalletService is the wallet consistency core: every mutating operation
// runs validate, persist, dispatch in that order, and every read re-queries
// current state.
type WalletService interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateWalletInput) (*domain.Wallet, error)
	Search(ctx context.Context, userID uuid.UUID, input SearchWalletsInput) (*WalletPage, error)
	Retrieve(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error)
	RetrieveDefault(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Update(ctx context.Context, userID, walletID uuid.UUID, input *UpdateWalletInput) (*domain.Wallet, error)
	PartialUpdate(ctx context.Context, userID, walletID uuid.UUID, input *PatchWalletInput) (*domain.Wallet, error)
	Toggle(ctx context.Context, userID, walletID uuid.UUID, field domain.ToggleField) (*domain.Wallet, error)
	SetDefault(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error)
	Delete(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error)
}

// WalletProvisioner reacts to a user-created event by provisioning the
// user's first, default wallet.
type WalletProvisioner interface {
	ProvisionDefaultWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}
