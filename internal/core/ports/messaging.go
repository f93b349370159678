package ports

import "wallet-service/internal/core/domain"

// WalletDispatcher publishes the snapshot of a committed wallet mutation to
// downstream consumers. Fire-and-forget: the core observes no delivery
// acknowledgment, and a dispatch failure never rolls back the persisted
// write.
type WalletDispatcher interface {
	Dispatch(wallet *domain.Wallet) error
}
