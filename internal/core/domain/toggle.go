package domain

import "time"

// ToggleField names a boolean wallet attribute that can be flipped. The set
// is closed; is_default is a member but only SetDefault may flip it, because
// it has cross-record effects.
type ToggleField string

const (
	ToggleIsActive           ToggleField = "is_active"
	ToggleIsDefault          ToggleField = "is_default"
	ToggleAcceptBankTransfer ToggleField = "accept_bank_transfer"
	ToggleAcceptPayments     ToggleField = "accept_payments"
	ToggleAcceptWithdrawing  ToggleField = "accept_withdrawing"
	ToggleAcceptDeposit      ToggleField = "accept_deposit"
)

// ParseToggleField maps a field name to its ToggleField. is_default is not
// addressable here; it is reserved for the set-default operation.
func ParseToggleField(s string) (ToggleField, bool) {
	switch ToggleField(s) {
	case ToggleIsActive, ToggleAcceptBankTransfer, ToggleAcceptPayments,
		ToggleAcceptWithdrawing, ToggleAcceptDeposit:
		return ToggleField(s), true
	}
	return "", false
}

// Toggle returns a copy with exactly the named boolean flipped and
// updated_at stamped. Unknown fields leave the wallet unchanged apart from
// the timestamp.
func (w Wallet) Toggle(field ToggleField) Wallet {
	now := time.Now()
	switch field {
	case ToggleIsActive:
		w.IsActive = !w.IsActive
	case ToggleIsDefault:
		w.IsDefault = !w.IsDefault
	case ToggleAcceptBankTransfer:
		w.AcceptBankTransfer = !w.AcceptBankTransfer
	case ToggleAcceptPayments:
		w.AcceptPayments = !w.AcceptPayments
	case ToggleAcceptWithdrawing:
		w.AcceptWithdrawing = !w.AcceptWithdrawing
	case ToggleAcceptDeposit:
		w.AcceptDeposit = !w.AcceptDeposit
	}
	w.UpdatedAt = &now
	return w
}
