package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository. Every lookup is scoped to
// live records; soft-deleted rows never surface through this type.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, user_id, surname, is_active, is_default, min_balance,
	accept_bank_transfer, accept_payments, accept_withdrawing, accept_deposit,
	created_at, updated_at, deleted_at`

const saveWalletQuery = `INSERT INTO wallets (id, user_id, surname, is_active, is_default, min_balance,
		accept_bank_transfer, accept_payments, accept_withdrawing, accept_deposit,
		created_at, updated_at, deleted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (id) DO UPDATE SET
		surname = EXCLUDED.surname,
		is_active = EXCLUDED.is_active,
		is_default = EXCLUDED.is_default,
		min_balance = EXCLUDED.min_balance,
		accept_bank_transfer = EXCLUDED.accept_bank_transfer,
		accept_payments = EXCLUDED.accept_payments,
		accept_withdrawing = EXCLUDED.accept_withdrawing,
		accept_deposit = EXCLUDED.accept_deposit,
		updated_at = EXCLUDED.updated_at,
		deleted_at = EXCLUDED.deleted_at`

func walletArgs(w *domain.Wallet) []any {
	return []any{
		w.ID, w.UserID, w.Surname, w.IsActive, w.IsDefault, w.MinBalance,
		w.AcceptBankTransfer, w.AcceptPayments, w.AcceptWithdrawing, w.AcceptDeposit,
		w.CreatedAt, w.UpdatedAt, w.DeletedAt,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Surname, &w.IsActive, &w.IsDefault, &w.MinBalance,
		&w.AcceptBankTransfer, &w.AcceptPayments, &w.AcceptWithdrawing, &w.AcceptDeposit,
		&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// FindByID fetches a live wallet by owner and wallet ID.
func (r *WalletRepo) FindByID(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID, walletID))
	if err != nil {
		return nil, fmt.Errorf("find wallet by id: %w", err)
	}
	return w, nil
}

// FindAny fetches an arbitrary live wallet for the user, used as an
// existence probe.
func (r *WalletRepo) FindAny(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND deleted_at IS NULL LIMIT 1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("find any wallet: %w", err)
	}
	return w, nil
}

// FindBySurname fetches the user's live wallet with the given normalized surname.
func (r *WalletRepo) FindBySurname(ctx context.Context, userID uuid.UUID, surname string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND surname = $2 AND deleted_at IS NULL`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID, surname))
	if err != nil {
		return nil, fmt.Errorf("find wallet by surname: %w", err)
	}
	return w, nil
}

// FindDefault fetches the user's live default wallet.
func (r *WalletRepo) FindDefault(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND is_default AND deleted_at IS NULL`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("find default wallet: %w", err)
	}
	return w, nil
}

// FindPage fetches one page of the user's live wallets plus the total count
// matching the filter.
func (r *WalletRepo) FindPage(ctx context.Context, userID uuid.UUID, surname *string, page ports.PageRequest) ([]domain.Wallet, int64, error) {
	where := `WHERE user_id = $1 AND deleted_at IS NULL`
	args := []any{userID}
	if surname != nil {
		where += ` AND surname = $2`
		args = append(args, *surname)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallets `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wallets: %w", err)
	}

	direction := "ASC"
	if page.Direction == ports.SortDesc {
		direction = "DESC"
	}
	// page.Sort is constrained to the SortField enum, never caller input.
	query := fmt.Sprintf(`SELECT %s FROM wallets %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		walletColumns, where, page.Sort, direction, len(args)+1, len(args)+2)
	args = append(args, page.Size, page.Page*page.Size)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query wallet page: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Surname, &w.IsActive, &w.IsDefault, &w.MinBalance,
			&w.AcceptBankTransfer, &w.AcceptPayments, &w.AcceptWithdrawing, &w.AcceptDeposit,
			&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wallet page: %w", err)
	}
	return wallets, total, nil
}

// Save upserts a single wallet record.
func (r *WalletRepo) Save(ctx context.Context, w *domain.Wallet) error {
	if _, err := r.pool.Exec(ctx, saveWalletQuery, walletArgs(w)...); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return nil
}

// SaveAll upserts the given wallets atomically. The default reassignment
// flow relies on this so the uniqueness of is_default holds at every
// commit point.
func (r *WalletRepo) SaveAll(ctx context.Context, wallets []*domain.Wallet) error {
	if len(wallets) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin wallet batch: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, w := range wallets {
		if _, err := tx.Exec(ctx, saveWalletQuery, walletArgs(w)...); err != nil {
			return fmt.Errorf("save wallet %s: %w", w.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit wallet batch: %w", err)
	}
	return nil
}
