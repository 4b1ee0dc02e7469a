package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an operation amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrUnsupportedCurrency is returned when the rate provider does not know the currency.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrWalletNotFound is returned when the user has no wallet yet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInsufficientFunds is returned when a debit exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDuplicateReference is returned when a concurrent request bearing the
	// same reference won the append race. The operation was already processed.
	ErrDuplicateReference = errors.New("reference already processed")
)

// Operation result statuses
const (
	StatusOK        = "ok"
	StatusDuplicate = "duplicate"
)

// WalletReader defines wallet read operations used by the engine.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	ListBalances(ctx context.Context, walletID uuid.UUID) ([]models.BalanceDB, error)
	GetBalancesForUpdate(ctx context.Context, walletID uuid.UUID) (map[string]decimal.Decimal, error)
}

// WalletWriter defines wallet and balance write operations used by the engine.
type WalletWriter interface {
	CreateIfAbsent(ctx context.Context, userID uuid.UUID, baseCurrency string) (*models.WalletDB, error)
	Credit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionReader reads the ledger: duplicate detection and history listing.
type TransactionReader interface {
	GetByReference(ctx context.Context, reference string) (*models.TransactionDB, error)
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.TransactionDB, error)
}

// TransactionWriter appends to the ledger.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
}

// RateProvider resolves exchange rates and currency support. SupportsCurrency
// returns an error, not false, when the provider cannot reach the feed: a
// feed outage must stay distinguishable from an unknown currency.
type RateProvider interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	SupportsCurrency(ctx context.Context, currency string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FundResult summarizes a fund operation.
type FundResult struct {
	Status      string
	Transaction models.TransactionDB
	NewBalance  decimal.Decimal
}

// ExchangeResult summarizes a convert or trade operation.
type ExchangeResult struct {
	Status       string
	Transaction  models.TransactionDB
	FromCurrency string
	Deducted     decimal.Decimal
	ToCurrency   string
	Added        decimal.Decimal
	Rate         decimal.Decimal
}

// WalletSummary is a wallet with all of its balances.
type WalletSummary struct {
	BaseCurrency string
	Balances     []models.BalanceDB
}

// WalletService orchestrates fund, convert and trade operations against the
// balance store, the rate provider and the transaction ledger. It relies on
// the request-scoped database transaction for atomicity: balance mutations
// and the ledger append of one operation commit or roll back together.
type WalletService struct {
	walletReader  WalletReader
	walletWriter  WalletWriter
	txnReader     TransactionReader
	committedTxns TransactionReader // reads outside the request transaction
	txnWriter     TransactionWriter
	rates         RateProvider
	kafkaWriter   KafkaWriter
	discardTx     func(ctx context.Context) // marks the request transaction rollback-only
	baseCurrency  string                    // base currency for lazily created wallets
	tradeFee      decimal.Decimal           // fee fraction applied to trades out of the base currency
}

// NewWalletService creates a new WalletService. committedTxns must read
// through the plain database handle, never the request transaction: it is
// consulted after a unique violation has aborted the request transaction.
func NewWalletService(
	walletReader WalletReader,
	walletWriter WalletWriter,
	txnReader TransactionReader,
	committedTxns TransactionReader,
	txnWriter TransactionWriter,
	rates RateProvider,
	kafkaWriter KafkaWriter,
	discardTx func(ctx context.Context),
	baseCurrency string,
	tradeFee decimal.Decimal,
) *WalletService {
	return &WalletService{
		walletReader:  walletReader,
		walletWriter:  walletWriter,
		txnReader:     txnReader,
		committedTxns: committedTxns,
		txnWriter:     txnWriter,
		rates:         rates,
		kafkaWriter:   kafkaWriter,
		discardTx:     discardTx,
		baseCurrency:  baseCurrency,
		tradeFee:      tradeFee,
	}
}

// publishTransaction publishes a committed ledger entry to Kafka, best effort.
func (svc *WalletService) publishTransaction(ctx context.Context, txn models.TransactionDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}

// appendLedger stores the transaction row. A unique violation on the
// reference means a concurrent request with the same reference committed
// first; it is reported as ErrDuplicateReference, never as a generic error.
func (svc *WalletService) appendLedger(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	stored, err := svc.txnWriter.Save(ctx, txn)
	if err != nil {
		if errors.Is(err, repositories.ErrReferenceExists) {
			logger.Log.Warnw("reference append race lost", "reference", txn.Reference)
			return nil, ErrDuplicateReference
		}
		logger.Log.Errorw("failed to append ledger entry", "reference", txn.Reference, "error", err)
		return nil, err
	}
	return stored, nil
}

// resolveDuplicate turns a lost reference-append race into the same outcome
// as the duplicate fast path: the winning request's stored transaction. The
// unique violation has aborted the request transaction, so the winner's row
// is read through the plain database handle and the request transaction is
// marked rollback-only; none of the loser's balance writes survive.
func (svc *WalletService) resolveDuplicate(ctx context.Context, reference string) (*models.TransactionDB, error) {
	if svc.discardTx != nil {
		svc.discardTx(ctx)
	}

	winner, err := svc.committedTxns.GetByReference(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to load winning transaction", "reference", reference, "error", err)
		return nil, ErrDuplicateReference
	}
	if winner == nil {
		return nil, ErrDuplicateReference
	}

	logger.Log.Infow("duplicate resolved to winning transaction", "reference", reference, "transaction_id", winner.TransactionID)
	return winner, nil
}

// Fund credits the amount to the user's balance in the given currency,
// creating the wallet and the balance record lazily. No rate is applied.
func (svc *WalletService) Fund(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, reference string) (*FundResult, error) {
	existing, err := svc.txnReader.GetByReference(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to check reference", "reference", reference, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("duplicate fund request", "reference", reference, "transaction_id", existing.TransactionID)
		return &FundResult{Status: StatusDuplicate, Transaction: *existing}, nil
	}

	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	amount = amount.Round(2)

	supported, err := svc.rates.SupportsCurrency(ctx, currency)
	if err != nil {
		logger.Log.Errorw("failed to resolve currency support", "currency", currency, "error", err)
		return nil, err
	}
	if !supported {
		logger.Log.Warnw("currency not resolvable by rate provider", "currency", currency)
		return nil, ErrUnsupportedCurrency
	}

	wallet, err := svc.walletWriter.CreateIfAbsent(ctx, userID, svc.baseCurrency)
	if err != nil {
		logger.Log.Errorw("failed to get or create wallet", "userID", userID, "error", err)
		return nil, err
	}

	newBalance, err := svc.walletWriter.Credit(ctx, wallet.WalletID, currency, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit funding", "userID", userID, "amount", amount, "currency", currency, "error", err)
		return nil, err
	}

	stored, err := svc.appendLedger(ctx, models.TransactionDB{
		WalletID:  wallet.WalletID,
		Currency:  currency,
		Amount:    amount,
		Type:      models.TransactionTypeFunding,
		Status:    models.TransactionStatusSuccess,
		Reference: reference,
		Remarks:   fmt.Sprintf("Funded %s %s", amount, currency),
	})
	if errors.Is(err, ErrDuplicateReference) {
		winner, werr := svc.resolveDuplicate(ctx, reference)
		if werr != nil {
			return nil, werr
		}
		return &FundResult{Status: StatusDuplicate, Transaction: *winner}, nil
	}
	if err != nil {
		return nil, err
	}

	svc.publishTransaction(ctx, *stored)

	return &FundResult{Status: StatusOK, Transaction: *stored, NewBalance: newBalance}, nil
}

// Convert exchanges between two currencies at the current feed rate.
func (svc *WalletService) Convert(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal, reference string) (*ExchangeResult, error) {
	return svc.exchange(ctx, userID, fromCurrency, toCurrency, amount, reference, models.TransactionTypeConversion)
}

// Trade exchanges between two currencies at the cached rate, applying a flat
// fee on the converted amount when the source currency is the wallet's base
// currency. The fee reduces the credited amount, never the debited one.
func (svc *WalletService) Trade(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal, reference string) (*ExchangeResult, error) {
	return svc.exchange(ctx, userID, fromCurrency, toCurrency, amount, reference, models.TransactionTypeTrade)
}

func (svc *WalletService) exchange(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal, reference, txnType string) (*ExchangeResult, error) {
	existing, err := svc.txnReader.GetByReference(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to check reference", "reference", reference, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("duplicate exchange request", "reference", reference, "transaction_id", existing.TransactionID)
		return &ExchangeResult{Status: StatusDuplicate, Transaction: *existing}, nil
	}

	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	amount = amount.Round(2)

	wallet, err := svc.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	// Row locks taken here serialize concurrent operations on this wallet for
	// the rest of the request transaction.
	balances, err := svc.walletReader.GetBalancesForUpdate(ctx, wallet.WalletID)
	if err != nil {
		logger.Log.Errorw("failed to lock balances", "walletID", wallet.WalletID, "error", err)
		return nil, err
	}
	if balances[fromCurrency].LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	rate, err := svc.rates.GetRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		logger.Log.Errorw("failed to get exchange rate", "from", fromCurrency, "to", toCurrency, "error", err)
		return nil, err
	}

	converted := amount.Mul(rate).Round(2)
	credited := converted
	if txnType == models.TransactionTypeTrade && fromCurrency == wallet.BaseCurrency {
		fee := converted.Mul(svc.tradeFee).Round(2)
		credited = converted.Sub(fee)
	}

	if _, err := svc.walletWriter.Debit(ctx, wallet.WalletID, fromCurrency, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit source currency", "walletID", wallet.WalletID, "currency", fromCurrency, "error", err)
		return nil, err
	}

	if _, err := svc.walletWriter.Credit(ctx, wallet.WalletID, toCurrency, credited); err != nil {
		logger.Log.Errorw("failed to credit target currency", "walletID", wallet.WalletID, "currency", toCurrency, "error", err)
		return nil, err
	}

	verb := "Converted"
	if txnType == models.TransactionTypeTrade {
		verb = "Traded"
	}

	stored, err := svc.appendLedger(ctx, models.TransactionDB{
		WalletID:  wallet.WalletID,
		Currency:  fromCurrency,
		Amount:    amount,
		Rate:      decimal.NullDecimal{Decimal: rate, Valid: true},
		Type:      txnType,
		Status:    models.TransactionStatusSuccess,
		Reference: reference,
		Remarks:   fmt.Sprintf("%s %s %s to %s %s at rate %s", verb, amount, fromCurrency, credited, toCurrency, rate),
	})
	if errors.Is(err, ErrDuplicateReference) {
		winner, werr := svc.resolveDuplicate(ctx, reference)
		if werr != nil {
			return nil, werr
		}
		return &ExchangeResult{Status: StatusDuplicate, Transaction: *winner}, nil
	}
	if err != nil {
		return nil, err
	}

	svc.publishTransaction(ctx, *stored)

	return &ExchangeResult{
		Status:       StatusOK,
		Transaction:  *stored,
		FromCurrency: fromCurrency,
		Deducted:     amount,
		ToCurrency:   toCurrency,
		Added:        credited,
		Rate:         rate,
	}, nil
}

// GetWallet returns the user's wallet with all of its balances.
func (svc *WalletService) GetWallet(ctx context.Context, userID uuid.UUID) (*WalletSummary, error) {
	wallet, err := svc.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	balances, err := svc.walletReader.ListBalances(ctx, wallet.WalletID)
	if err != nil {
		logger.Log.Errorw("failed to list balances", "walletID", wallet.WalletID, "error", err)
		return nil, err
	}

	return &WalletSummary{BaseCurrency: wallet.BaseCurrency, Balances: balances}, nil
}

// ListTransactions returns the user's ledger entries, newest first.
func (svc *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	wallet, err := svc.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	txns, err := svc.txnReader.ListByWalletID(ctx, wallet.WalletID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "walletID", wallet.WalletID, "error", err)
		return nil, err
	}

	return txns, nil
}
