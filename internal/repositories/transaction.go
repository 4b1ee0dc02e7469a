package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// ErrReferenceExists is returned when appending a transaction whose reference
// was already stored. Two concurrent requests bearing the same reference
// cannot both win: the unique index makes the second insert fail with this
// error, which callers treat as "already processed".
var ErrReferenceExists = errors.New("transaction reference already exists")

const pgUniqueViolation = "23505"

// TransactionWriteRepository appends rows to the transaction ledger
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends a transaction row and returns the stored record. The append is
// the durability point of an operation: it shares the request transaction
// with the balance mutations, so either all of them commit or none do.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	query := `
		INSERT INTO transactions (transaction_id, wallet_id, currency, amount, rate, type, status, reference, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING transaction_id, seq, wallet_id, currency, amount, rate, type, status, reference, remarks, created_at
	`

	var stored models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query,
		uuid.New(), txn.WalletID, txn.Currency, txn.Amount, txn.Rate, txn.Type, txn.Status, txn.Reference, txn.Remarks)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.WalletID, txn.Currency, txn.Amount, txn.Type, txn.Reference},
		"result", stored.TransactionID,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrReferenceExists
		}
		return nil, err
	}
	return &stored, nil
}

// TransactionReadRepository reads rows from the transaction ledger
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

func (r *TransactionReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByReference looks up a transaction by its idempotency reference.
// Returns (nil, nil) when the reference has never been seen.
func (r *TransactionReadRepository) GetByReference(ctx context.Context, reference string) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, seq, wallet_id, currency, amount, rate, type, status, reference, remarks, created_at
		FROM transactions
		WHERE reference = $1
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, reference)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reference},
		"result", txn.TransactionID,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// ListByWalletID retrieves all transactions of a wallet, newest first.
// Rows sharing a timestamp are ordered by insertion, most recent insert first.
func (r *TransactionReadRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, seq, wallet_id, currency, amount, rate, type, status, reference, remarks, created_at
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, seq DESC
	`

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &txns, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
