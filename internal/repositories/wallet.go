package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WalletWriteRepository handles wallet and balance write operations
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// CreateIfAbsent creates a wallet for the user with the given base currency.
// If the user already owns a wallet the existing row is returned unchanged.
func (r *WalletWriteRepository) CreateIfAbsent(ctx context.Context, userID uuid.UUID, baseCurrency string) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, base_currency, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET updated_at = NOW()
		RETURNING wallet_id, user_id, base_currency, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, uuid.New(), userID, baseCurrency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, baseCurrency},
		"result", wallet.WalletID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit performs an UPSERT: creates the balance row lazily if the wallet has
// never touched the currency, otherwise increases the stored amount.
func (r *WalletWriteRepository) Credit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		INSERT INTO balances (balance_id, wallet_id, currency, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (wallet_id, currency)
		DO UPDATE SET amount = balances.amount + EXCLUDED.amount
		RETURNING amount
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, uuid.New(), walletID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Debit decreases the stored amount in a single conditional update. The guard
// and the mutation evaluate against the same row version, so a concurrent
// debit can never drive the balance negative. A missing balance row or an
// amount larger than the stored one both return sql.ErrNoRows.
func (r *WalletWriteRepository) Debit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE balances
		SET amount = amount - $3
		WHERE wallet_id = $1 AND currency = $2 AND amount >= $3
		RETURNING amount
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, walletID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, currency, amount},
		"result", balance,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, sql.ErrNoRows
		}
		return decimal.Zero, err
	}
	return balance, nil
}

// WalletReadRepository handles wallet and balance read operations
type WalletReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletReadRepository {
	return &WalletReadRepository{db: db, txGetter: txGetter}
}

func (r *WalletReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByUserID retrieves the user's wallet. Returns (nil, nil) when the user
// has no wallet yet.
func (r *WalletReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, base_currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet.WalletID,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// ListBalances retrieves all balance rows of a wallet.
func (r *WalletReadRepository) ListBalances(ctx context.Context, walletID uuid.UUID) ([]models.BalanceDB, error) {
	const query = `
		SELECT balance_id, wallet_id, currency, amount
		FROM balances
		WHERE wallet_id = $1
		ORDER BY currency
	`

	var balances []models.BalanceDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &balances, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(balances),
		"error", err,
	)

	return balances, err
}

// GetBalancesForUpdate retrieves the wallet's balances as map[currency]amount
// while taking row-level locks, serializing concurrent read-modify-write
// spans against the same wallet. Must run inside a request transaction.
func (r *WalletReadRepository) GetBalancesForUpdate(ctx context.Context, walletID uuid.UUID) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT currency, amount
		FROM balances
		WHERE wallet_id = $1
		FOR UPDATE
	`

	var rows []struct {
		Currency string          `db:"currency"`
		Amount   decimal.Decimal `db:"amount"`
	}

	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, walletID)

	balances := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		balances[row.Currency] = row.Amount
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(balances),
		"error", err,
	)

	return balances, err
}
