package service

import (
	"context"
	"fmt"
	"strings"

	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"
	"wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService: the invariant-preserving
// mutation core. Every mutating operation re-reads current state, validates,
// persists, and only then dispatches; no wallet state is cached between
// calls.
type WalletServiceImpl struct {
	repo       ports.WalletRepository
	dispatcher ports.WalletDispatcher
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	repo ports.WalletRepository,
	dispatcher ports.WalletDispatcher,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Create provisions an additional wallet for a user already known to the
// system. The existence probe is the user's first wallet: no live wallet,
// no user.
func (s *WalletServiceImpl) Create(ctx context.Context, userID uuid.UUID, input *ports.CreateWalletInput) (*domain.Wallet, error) {
	if input == nil {
		return nil, apperror.ErrNullPayload("wallet creation")
	}
	s.log.Info().Str("user_id", userID.String()).Str("surname", input.Surname).Msg("creating wallet")

	probe, err := s.repo.FindAny(ctx, userID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("probe user wallets: %w", err))
	}
	if probe == nil {
		return nil, apperror.ErrUserNotFound(apperror.Term("userId", userID))
	}

	wallet := domain.NewWallet(userID, input.Surname, input.IsActive, input.MinBalance)
	if err := s.ensureSurnameUnique(ctx, userID, wallet.Surname, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.saveAndDispatch(ctx, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Search lists one page of the user's live wallets. An empty result set is
// an error by design: callers must be able to tell "no matches" apart from
// a successful empty listing.
func (s *WalletServiceImpl) Search(ctx context.Context, userID uuid.UUID, input ports.SearchWalletsInput) (*ports.WalletPage, error) {
	page := input.Page.Normalized()

	var surname *string
	if input.Surname != nil {
		normalized := domain.NormalizeSurname(*input.Surname)
		if normalized != "" {
			surname = &normalized
		}
	}

	content, total, err := s.repo.FindPage(ctx, userID, surname, page)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("search wallets: %w", err))
	}
	if len(content) == 0 {
		terms := []apperror.SearchTerm{
			apperror.Term("userId", userID),
			apperror.Term("page", page.Page),
			apperror.Term("size", page.Size),
		}
		if surname != nil {
			terms = append(terms, apperror.Term("surname", *surname))
		}
		return nil, apperror.ErrWalletNotFound(terms...)
	}

	pageCount := int(total / int64(page.Size))
	if total%int64(page.Size) != 0 {
		pageCount++
	}

	return &ports.WalletPage{
		Content:   content,
		Page:      page.Page,
		Size:      page.Size,
		Total:     total,
		PageCount: pageCount,
		SortedBy:  fmt.Sprintf("%s: %s", page.Sort, strings.ToUpper(string(page.Direction))),
	}, nil
}

// Retrieve fetches a single live wallet scoped to the user.
func (s *WalletServiceImpl) Retrieve(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.repo.FindByID(ctx, userID, walletID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("retrieve wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("id", walletID))
	}
	return wallet, nil
}

// RetrieveDefault fetches the user's default wallet.
func (s *WalletServiceImpl) RetrieveDefault(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.repo.FindDefault(ctx, userID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("retrieve default wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("default", true))
	}
	return wallet, nil
}

// Update fully replaces the mutable fields of a wallet; is_default is
// untouchable here.
func (s *WalletServiceImpl) Update(ctx context.Context, userID, walletID uuid.UUID, input *ports.UpdateWalletInput) (*domain.Wallet, error) {
	if input == nil {
		return nil, apperror.ErrNullPayload("wallet update")
	}
	s.log.Info().Str("user_id", userID.String()).Str("wallet_id", walletID.String()).Msg("updating wallet")

	wallet, err := s.repo.FindByID(ctx, userID, walletID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("id", walletID))
	}

	updated := wallet.WithUpdate(domain.Update{
		Surname:            input.Surname,
		IsActive:           input.IsActive,
		MinBalance:         input.MinBalance,
		AcceptBankTransfer: input.AcceptBankTransfer,
		AcceptPayments:     input.AcceptPayments,
		AcceptWithdrawing:  input.AcceptWithdrawing,
		AcceptDeposit:      input.AcceptDeposit,
	})
	if err := s.ensureSurnameUnique(ctx, userID, updated.Surname, walletID); err != nil {
		return nil, err
	}

	if err := s.saveAndDispatch(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// PartialUpdate replaces only the fields present in the payload; a blank
// surname counts as absent.
func (s *WalletServiceImpl) PartialUpdate(ctx context.Context, userID, walletID uuid.UUID, input *ports.PatchWalletInput) (*domain.Wallet, error) {
	if input == nil {
		return nil, apperror.ErrNullPayload("wallet partial update")
	}
	s.log.Info().Str("user_id", userID.String()).Str("wallet_id", walletID.String()).Msg("patching wallet")

	wallet, err := s.repo.FindByID(ctx, userID, walletID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("id", walletID))
	}

	patched := wallet.WithPatch(domain.Patch{
		Surname:            input.Surname,
		IsActive:           input.IsActive,
		MinBalance:         input.MinBalance,
		AcceptBankTransfer: input.AcceptBankTransfer,
		AcceptPayments:     input.AcceptPayments,
		AcceptWithdrawing:  input.AcceptWithdrawing,
		AcceptDeposit:      input.AcceptDeposit,
	})
	if err := s.ensureSurnameUnique(ctx, userID, patched.Surname, walletID); err != nil {
		return nil, err
	}

	if err := s.saveAndDispatch(ctx, &patched); err != nil {
		return nil, err
	}
	return &patched, nil
}

// Toggle flips exactly one boolean policy flag. is_default never goes
// through here: it has cross-record effects and its own operation.
func (s *WalletServiceImpl) Toggle(ctx context.Context, userID, walletID uuid.UUID, field domain.ToggleField) (*domain.Wallet, error) {
	if _, ok := domain.ParseToggleField(string(field)); !ok {
		return nil, apperror.Validation(fmt.Sprintf("field is not toggleable: %s", field))
	}
	s.log.Info().
		Str("user_id", userID.String()).
		Str("wallet_id", walletID.String()).
		Str("field", string(field)).
		Msg("toggling wallet field")

	wallet, err := s.repo.FindByID(ctx, userID, walletID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("id", walletID))
	}

	toggled := wallet.Toggle(field)
	if err := s.saveAndDispatch(ctx, &toggled); err != nil {
		return nil, err
	}
	return &toggled, nil
}

// SetDefault promotes a wallet to default. When a different wallet holds
// the flag it is cleared in the same batch write, so observers never see
// two defaults across the commit boundary the store guarantees. One
// dispatch fires per changed record.
func (s *WalletServiceImpl) SetDefault(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error) {
	s.log.Info().Str("user_id", userID.String()).Str("wallet_id", walletID.String()).Msg("setting default wallet")

	target, err := s.repo.FindByID(ctx, userID, walletID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("find wallet: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("id", walletID))
	}
	if target.IsDefault {
		// Nothing changed, nothing announced.
		return target, nil
	}

	newDefault := target.Toggle(domain.ToggleIsDefault)
	batch := []*domain.Wallet{&newDefault}

	oldDefault, err := s.repo.FindDefault(ctx, userID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("find current default: %w", err))
	}
	if oldDefault != nil && oldDefault.ID != walletID {
		displaced := oldDefault.Toggle(domain.ToggleIsDefault)
		batch = append(batch, &displaced)
	}

	if err := s.repo.SaveAll(ctx, batch); err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("save default batch: %w", err))
	}
	for _, w := range batch {
		s.dispatch(w)
	}
	return &newDefault, nil
}

// Delete soft-deletes a wallet: the stored record gets the deletion marker
// while the caller is handed the wallet as it was at the moment of
// deletion. The default wallet cannot be deleted; another wallet must be
// promoted first.
func (s *WalletServiceImpl) Delete(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error) {
	s.log.Info().Str("user_id", userID.String()).Str("wallet_id", walletID.String()).Msg("deleting wallet")

	wallet, err := s.repo.FindByID(ctx, userID, walletID)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(apperror.Term("userId", userID), apperror.Term("id", walletID))
	}
	if wallet.IsDefault {
		return nil, apperror.ErrDefaultWalletDeletion(wallet.ID, wallet.Surname)
	}

	deleted := wallet.AsDeleted()
	if err := s.saveAndDispatch(ctx, &deleted); err != nil {
		return nil, err
	}
	return wallet, nil
}

// ensureSurnameUnique rejects a normalized surname already held by another
// live wallet of the same user. The record being updated does not conflict
// with itself.
func (s *WalletServiceImpl) ensureSurnameUnique(ctx context.Context, userID uuid.UUID, surname string, selfID uuid.UUID) error {
	existing, err := s.repo.FindBySurname(ctx, userID, surname)
	if err != nil {
		return apperror.Unexpected(fmt.Errorf("check surname uniqueness: %w", err))
	}
	if existing != nil && existing.ID != selfID {
		return apperror.ErrDuplicatedSurname(surname)
	}
	return nil
}

// saveAndDispatch persists the wallet and then announces it. Dispatch is
// best-effort: the store is the source of truth, so a failed publish is
// logged and the mutation still succeeds.
func (s *WalletServiceImpl) saveAndDispatch(ctx context.Context, wallet *domain.Wallet) error {
	if err := s.repo.Save(ctx, wallet); err != nil {
		return apperror.Unexpected(fmt.Errorf("save wallet: %w", err))
	}
	s.dispatch(wallet)
	return nil
}

func (s *WalletServiceImpl) dispatch(wallet *domain.Wallet) {
	if err := s.dispatcher.Dispatch(wallet); err != nil {
		s.log.Error().
			Err(err).
			Str("wallet_id", wallet.ID.String()).
			Str("user_id", wallet.UserID.String()).
			Msg("wallet dispatch failed")
	}
}
