package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/cats-api/internal/logger"
	"github.com/sbilibin2017/cats-api/internal/models"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The handler's response is held back until the transaction is settled:
// it is committed when the handler responds with a status below 400 and
// rolled back otherwise. A failed commit replaces the response with a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				internalError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			bw := newBufferedWriter(w)
			ctx := setTxToContext(r.Context(), tx)

			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				internalError(w)
				return
			}
			bw.flush()
		})
	}
}

// bufferedWriter records the status and body written by a handler so they
// can be sent only after the transaction outcome is known.
type bufferedWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	if bw.body.Len() > 0 {
		if _, err := bw.ResponseWriter.Write(bw.body.Bytes()); err != nil {
			logger.Log.Errorw("failed to write response", "error", err)
		}
	}
}

func internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Internal server error"})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
