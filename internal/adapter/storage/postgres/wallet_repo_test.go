package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredWallet(userID uuid.UUID, surname string) *domain.Wallet {
	return &domain.Wallet{
		ID:                 uuid.New(),
		UserID:             userID,
		Surname:            surname,
		IsActive:           true,
		MinBalance:         decimal.Zero,
		AcceptBankTransfer: true,
		AcceptPayments:     true,
		AcceptWithdrawing:  true,
		AcceptDeposit:      true,
		CreatedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}
}

func walletTestColumns() []string {
	return []string{
		"id", "user_id", "surname", "is_active", "is_default", "min_balance",
		"accept_bank_transfer", "accept_payments", "accept_withdrawing", "accept_deposit",
		"created_at", "updated_at", "deleted_at",
	}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletTestColumns()).AddRow(
		w.ID, w.UserID, w.Surname, w.IsActive, w.IsDefault, w.MinBalance,
		w.AcceptBankTransfer, w.AcceptPayments, w.AcceptWithdrawing, w.AcceptDeposit,
		w.CreatedAt, w.UpdatedAt, w.DeletedAt,
	)
}

func TestWalletRepo_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newStoredWallet(uuid.New(), "vacations")

	mock.ExpectQuery(`SELECT .+ FROM wallets\s+WHERE user_id = \$1 AND id = \$2 AND deleted_at IS NULL`).
		WithArgs(w.UserID, w.ID).
		WillReturnRows(walletRow(w))

	result, err := repo.FindByID(context.Background(), w.UserID, w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.Equal(t, "vacations", result.Surname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_FindByID_NotFoundReturnsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	userID, walletID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM wallets`).
		WithArgs(userID, walletID).
		WillReturnRows(pgxmock.NewRows(walletTestColumns()))

	result, err := repo.FindByID(context.Background(), userID, walletID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_FindBySurname(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newStoredWallet(uuid.New(), "health")

	mock.ExpectQuery(`SELECT .+ FROM wallets\s+WHERE user_id = \$1 AND surname = \$2 AND deleted_at IS NULL`).
		WithArgs(w.UserID, "health").
		WillReturnRows(walletRow(w))

	result, err := repo.FindBySurname(context.Background(), w.UserID, "health")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_FindDefault(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newStoredWallet(uuid.New(), "default")
	w.IsDefault = true

	mock.ExpectQuery(`SELECT .+ FROM wallets\s+WHERE user_id = \$1 AND is_default AND deleted_at IS NULL`).
		WithArgs(w.UserID).
		WillReturnRows(walletRow(w))

	result, err := repo.FindDefault(context.Background(), w.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_FindPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	userID := uuid.New()
	a := newStoredWallet(userID, "health")
	b := newStoredWallet(userID, "vacations")

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM wallets WHERE user_id = \$1 AND deleted_at IS NULL`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT .+ FROM wallets WHERE user_id = \$1 AND deleted_at IS NULL ORDER BY surname ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(userID, 20, 0).
		WillReturnRows(walletRow(a).AddRow(
			b.ID, b.UserID, b.Surname, b.IsActive, b.IsDefault, b.MinBalance,
			b.AcceptBankTransfer, b.AcceptPayments, b.AcceptWithdrawing, b.AcceptDeposit,
			b.CreatedAt, b.UpdatedAt, b.DeletedAt,
		))

	page := ports.PageRequest{Page: 0, Size: 20, Sort: ports.SortBySurname, Direction: ports.SortAsc}
	wallets, total, err := repo.FindPage(context.Background(), userID, nil, page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, wallets, 2)
	assert.Equal(t, "health", wallets[0].Surname)
	assert.Equal(t, "vacations", wallets[1].Surname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_FindPage_SurnameFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	userID := uuid.New()
	w := newStoredWallet(userID, "health")
	surname := "health"

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM wallets WHERE user_id = \$1 AND deleted_at IS NULL AND surname = \$2`).
		WithArgs(userID, surname).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT .+ FROM wallets WHERE user_id = \$1 AND deleted_at IS NULL AND surname = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(userID, surname, 10, 10).
		WillReturnRows(walletRow(w))

	page := ports.PageRequest{Page: 1, Size: 10, Sort: ports.SortByCreatedAt, Direction: ports.SortDesc}
	wallets, total, err := repo.FindPage(context.Background(), userID, &surname, page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, wallets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newStoredWallet(uuid.New(), "savings")

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(walletArgs(w)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_SaveAll_CommitsBothRecords(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	userID := uuid.New()
	newDefault := newStoredWallet(userID, "health")
	newDefault.IsDefault = true
	displaced := newStoredWallet(userID, "vacations")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(walletArgs(newDefault)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(walletArgs(displaced)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.SaveAll(context.Background(), []*domain.Wallet{newDefault, displaced})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_SaveAll_RollsBackOnFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newStoredWallet(uuid.New(), "savings")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(walletArgs(w)...).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = repo.SaveAll(context.Background(), []*domain.Wallet{w})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_SaveAll_EmptyIsNoOp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	err = repo.SaveAll(context.Background(), nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
