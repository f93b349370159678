package service

import (
	"context"
	"fmt"

	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"
	"wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProvisionServiceImpl implements ports.WalletProvisioner: the reaction to
// a user-created event. It writes through the repository directly because
// this is the user's first wallet; the creation command's "user must
// already have a wallet" probe does not apply.
type ProvisionServiceImpl struct {
	repo       ports.WalletRepository
	dispatcher ports.WalletDispatcher
	log        zerolog.Logger
}

// NewProvisionService creates a new ProvisionServiceImpl.
func NewProvisionService(
	repo ports.WalletRepository,
	dispatcher ports.WalletDispatcher,
	log zerolog.Logger,
) *ProvisionServiceImpl {
	return &ProvisionServiceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		log:        log,
	}
}

// ProvisionDefaultWallet creates the user's first wallet: active, default,
// zero minimum balance, the default surname.
func (s *ProvisionServiceImpl) ProvisionDefaultWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	s.log.Info().Str("user_id", userID.String()).Msg("provisioning default wallet")

	wallet := domain.NewDefaultWallet(userID)
	if err := s.repo.Save(ctx, &wallet); err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("save default wallet: %w", err))
	}

	if err := s.dispatcher.Dispatch(&wallet); err != nil {
		s.log.Error().
			Err(err).
			Str("wallet_id", wallet.ID.String()).
			Str("user_id", userID.String()).
			Msg("default wallet dispatch failed")
	}
	return &wallet, nil
}
