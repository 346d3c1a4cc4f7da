package corpusserver

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/dekarrin/rabench/internal/rlog"
)

// requireAuth mirrors tunaq's middle.AuthHandler/RequireAuth, simplified
// for a single-credential server: no user lookup, just "does this bearer
// token validate against our secret". A failed or missing token sleeps
// unauthDelay before responding, the same anti-timing-oracle delay
// tunaq's AuthHandler applies.
func requireAuth(secret []byte, unauthDelay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			tok, err := getBearerToken(req)
			if err == nil {
				err = validateToken(tok, secret)
			}
			if err != nil {
				time.Sleep(unauthDelay)
				jsonUnauthorized(err.Error()).writeResponse(w, req)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// requestID stamps every request with a fresh UUID in a response header,
// grounded on internal/task.NewBatchID's reuse of google/uuid for a
// traceable run identifier - here repurposed per-request instead of
// per-batch so a corpus-browser access can be correlated in logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, req)
	})
}

// dontPanic recovers from a panic in the handler chain and reports it as
// an HTTP-500, matching server/middle.DontPanic.
func dontPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				rlog.Error("corpusserver", "panic: %v\n%s", p, debug.Stack())
				jsonErr(http.StatusInternalServerError, "internal server error", "panic recovered").writeResponse(w, req)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
