package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
)

// txResponseBuffer captures the handler's response so nothing reaches the
// client before the transaction outcome is known. A success body is flushed
// only after the commit went through; a failed commit becomes a 500 instead
// of a success response describing writes that were rolled back.
type txResponseBuffer struct {
	header      http.Header
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func newTxResponseBuffer() *txResponseBuffer {
	return &txResponseBuffer{header: make(http.Header), statusCode: http.StatusOK}
}

func (w *txResponseBuffer) Header() http.Header { return w.header }

func (w *txResponseBuffer) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.statusCode = code
	w.wroteHeader = true
}

func (w *txResponseBuffer) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}

func (w *txResponseBuffer) flush(dst http.ResponseWriter) {
	for key, values := range w.header {
		for _, value := range values {
			dst.Header().Add(key, value)
		}
	}
	dst.WriteHeader(w.statusCode)
	dst.Write(w.body.Bytes())
}

// TxMiddleware wraps an HTTP handler with a database transaction. Balance
// mutations and the ledger append of one request execute as a single atomic
// unit: the transaction commits only when the handler responds with a 2xx
// status and was not marked rollback-only, otherwise every write of the
// request is rolled back. The response is buffered until that decision is
// made, so a commit failure can still be reported as a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			container := &txContainer{tx: tx}
			r = r.WithContext(setTxToContext(r.Context(), container))

			buf := newTxResponseBuffer()
			next.ServeHTTP(buf, r)

			if container.rollbackOnly || buf.statusCode >= http.StatusMultipleChoices {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "status", buf.statusCode, "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			buf.flush(w)
		})
	}
}

// txContainer carries the request transaction plus its rollback-only mark.
type txContainer struct {
	tx           *sqlx.Tx
	rollbackOnly bool
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores the transaction container in the context
func setTxToContext(ctx context.Context, container *txContainer) context.Context {
	return context.WithValue(ctx, txKey, container)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if container, ok := ctx.Value(txKey).(*txContainer); ok {
		return container.tx
	}
	return nil
}

// SetRollbackOnly marks the request transaction so it is rolled back when the
// request completes, regardless of the response status. Used when a success
// response reports an outcome owned by an earlier request, such as a
// duplicate reference resolved in favor of the request that committed first.
func SetRollbackOnly(ctx context.Context) {
	if container, ok := ctx.Value(txKey).(*txContainer); ok {
		container.rollbackOnly = true
	}
}
