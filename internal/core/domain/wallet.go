package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeletedSurnamePrefix marks the surname of a soft-deleted wallet so the
// original name becomes reusable among the user's live wallets.
const DeletedSurnamePrefix = "del:"

// DefaultSurname is the surname given to the wallet provisioned when a
// user-created event arrives.
const DefaultSurname = "default"

// Wallet is a named sub-account owned by a user. It carries policy flags
// only; balances and money movement live elsewhere.
type Wallet struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	Surname            string          `json:"surname"`
	IsActive           bool            `json:"is_active"`
	IsDefault          bool            `json:"is_default"`
	MinBalance         decimal.Decimal `json:"min_balance"`
	AcceptBankTransfer bool            `json:"accept_bank_transfer"`
	AcceptPayments     bool            `json:"accept_payments"`
	AcceptWithdrawing  bool            `json:"accept_withdrawing"`
	AcceptDeposit      bool            `json:"accept_deposit"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
	DeletedAt          *time.Time      `json:"deleted_at,omitempty"`
}

// NormalizeSurname lower-cases and trims a surname. Applied identically at
// create, update, and search time so equality comparisons are stable.
func NormalizeSurname(surname string) string {
	return strings.ToLower(strings.TrimSpace(surname))
}

// NewWallet builds a wallet from the creation command. Accept flags start
// enabled and the wallet is never born default.
func NewWallet(userID uuid.UUID, surname string, isActive *bool, minBalance *decimal.Decimal) Wallet {
	active := true
	if isActive != nil {
		active = *isActive
	}
	balance := decimal.Zero
	if minBalance != nil {
		balance = *minBalance
	}
	return Wallet{
		ID:                 uuid.New(),
		UserID:             userID,
		Surname:            NormalizeSurname(surname),
		IsActive:           active,
		IsDefault:          false,
		MinBalance:         balance,
		AcceptBankTransfer: true,
		AcceptPayments:     true,
		AcceptWithdrawing:  true,
		AcceptDeposit:      true,
		CreatedAt:          time.Now(),
	}
}

// NewDefaultWallet builds the wallet provisioned on a user-created event:
// active, default, zero minimum balance.
func NewDefaultWallet(userID uuid.UUID) Wallet {
	w := NewWallet(userID, DefaultSurname, nil, nil)
	w.IsDefault = true
	return w
}

// IsDeleted reports whether the wallet has been soft-deleted.
func (w Wallet) IsDeleted() bool {
	return w.DeletedAt != nil
}

// Update holds the full-replacement values for a wallet. Every field is
// required; is_default is untouchable through updates.
type Update struct {
	Surname            string
	IsActive           bool
	MinBalance         decimal.Decimal
	AcceptBankTransfer bool
	AcceptPayments     bool
	AcceptWithdrawing  bool
	AcceptDeposit      bool
}

// WithUpdate returns a copy with all mutable fields replaced and updated_at
// stamped. Identity, default flag, and timestamps of record keep their values.
func (w Wallet) WithUpdate(values Update) Wallet {
	now := time.Now()
	w.Surname = NormalizeSurname(values.Surname)
	w.IsActive = values.IsActive
	w.MinBalance = values.MinBalance
	w.AcceptBankTransfer = values.AcceptBankTransfer
	w.AcceptPayments = values.AcceptPayments
	w.AcceptWithdrawing = values.AcceptWithdrawing
	w.AcceptDeposit = values.AcceptDeposit
	w.UpdatedAt = &now
	return w
}

// Patch holds the partial-update values for a wallet. Nil fields (and a
// blank surname) fall back to the current value.
type Patch struct {
	Surname            *string
	IsActive           *bool
	MinBalance         *decimal.Decimal
	AcceptBankTransfer *bool
	AcceptPayments     *bool
	AcceptWithdrawing  *bool
	AcceptDeposit      *bool
}

// WithPatch returns a copy with the present fields replaced and updated_at
// stamped.
func (w Wallet) WithPatch(values Patch) Wallet {
	now := time.Now()
	if values.Surname != nil && strings.TrimSpace(*values.Surname) != "" {
		w.Surname = NormalizeSurname(*values.Surname)
	}
	if values.IsActive != nil {
		w.IsActive = *values.IsActive
	}
	if values.MinBalance != nil {
		w.MinBalance = *values.MinBalance
	}
	if values.AcceptBankTransfer != nil {
		w.AcceptBankTransfer = *values.AcceptBankTransfer
	}
	if values.AcceptPayments != nil {
		w.AcceptPayments = *values.AcceptPayments
	}
	if values.AcceptWithdrawing != nil {
		w.AcceptWithdrawing = *values.AcceptWithdrawing
	}
	if values.AcceptDeposit != nil {
		w.AcceptDeposit = *values.AcceptDeposit
	}
	w.UpdatedAt = &now
	return w
}

// AsDeleted returns the soft-deleted form: surname rewritten with the
// deletion prefix and deleted_at stamped. updated_at keeps its prior value
// so the record reads as an audit tombstone, not a regular update.
func (w Wallet) AsDeleted() Wallet {
	now := time.Now()
	w.Surname = DeletedSurnamePrefix + w.Surname
	w.DeletedAt = &now
	return w
}
