package dto

import "github.com/shopspring/decimal"

// CreateWalletRequest is the request body for wallet creation. Omitted
// optional fields fall back to the domain defaults.
type CreateWalletRequest struct {
	Surname    string           `json:"surname" binding:"required,min=1,max=255"`
	IsActive   *bool            `json:"is_active,omitempty"`
	MinBalance *decimal.Decimal `json:"min_balance,omitempty"`
}

// UpdateWalletRequest is the request body for full wallet replacement.
// Every business attribute must be present; pointer fields keep explicit
// false values distinguishable from absence.
type UpdateWalletRequest struct {
	Surname            string           `json:"surname" binding:"required,min=1,max=255"`
	IsActive           *bool            `json:"is_active" binding:"required"`
	MinBalance         *decimal.Decimal `json:"min_balance" binding:"required"`
	AcceptBankTransfer *bool            `json:"accept_bank_transfer" binding:"required"`
	AcceptPayments     *bool            `json:"accept_payments" binding:"required"`
	AcceptWithdrawing  *bool            `json:"accept_withdrawing" binding:"required"`
	AcceptDeposit      *bool            `json:"accept_deposit" binding:"required"`
}

// PatchWalletRequest is the request body for partial wallet updates.
// Absent fields leave the stored value untouched.
type PatchWalletRequest struct {
	Surname            *string          `json:"surname,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
	MinBalance         *decimal.Decimal `json:"min_balance,omitempty"`
	AcceptBankTransfer *bool            `json:"accept_bank_transfer,omitempty"`
	AcceptPayments     *bool            `json:"accept_payments,omitempty"`
	AcceptWithdrawing  *bool            `json:"accept_withdrawing,omitempty"`
	AcceptDeposit      *bool            `json:"accept_deposit,omitempty"`
}

// WalletResponse is the canonical wallet representation returned by every
// endpoint.
type WalletResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	Surname            string          `json:"surname"`
	IsActive           bool            `json:"is_active"`
	IsDefault          bool            `json:"is_default"`
	MinBalance         decimal.Decimal `json:"min_balance"`
	AcceptBankTransfer bool            `json:"accept_bank_transfer"`
	AcceptPayments     bool            `json:"accept_payments"`
	AcceptWithdrawing  bool            `json:"accept_withdrawing"`
	AcceptDeposit      bool            `json:"accept_deposit"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          *string         `json:"updated_at,omitempty"`
}

// WalletPageResponse wraps a paginated wallet listing.
type WalletPageResponse struct {
	Items      []WalletResponse `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	SortedBy   string           `json:"sorted_by"`
}
