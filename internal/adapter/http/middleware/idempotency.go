package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/usecase"
)

// IdempotencyKeyHeader carries the client's idempotency key.
const IdempotencyKeyHeader = "Idempotency-Key"

// storedResponse is what a completed key resolves to.
type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// IdempotencyMiddleware replays the stored response of a repeated sync
// trigger. Keys are scoped to method and path, so one key reused across
// cadences triggers each cadence once.
type IdempotencyMiddleware struct {
	store  usecase.IdempotencyStore
	ttl    time.Duration
	logger zerolog.Logger
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware. A zero ttl
// falls back to usecase.IdempotencyKeyTTL.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration, logger zerolog.Logger) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = usecase.IdempotencyKeyTTL
	}
	return &IdempotencyMiddleware{store: store, ttl: ttl, logger: logger}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" || (r.Method != http.MethodPost && r.Method != http.MethodPut) {
			next.ServeHTTP(w, r)
			return
		}
		scoped := r.Method + " " + r.URL.Path + " " + key
		log := m.logger.With().Str("idempotency_key", key).Str("path", r.URL.Path).Logger()

		exists, cached, err := m.store.CheckAndSet(r.Context(), scoped, nil, m.ttl)
		if err != nil {
			log.Error().Err(err).Msg("idempotency check failed")
			writeError(w, http.StatusInternalServerError, "idempotency check failed")
			return
		}

		// A pending key means the first request is still running; it is
		// executed again rather than blocking the caller.
		if exists && len(cached) > 0 && string(cached) != usecase.IdempotencyPending {
			replay(w, cached)
			return
		}

		var body bytes.Buffer
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&body)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if status < 200 || status >= 300 {
			return
		}

		encoded, err := json.Marshal(storedResponse{Status: status, Body: rawBody(body.Bytes())})
		if err != nil {
			log.Warn().Err(err).Msg("failed to encode idempotent response")
			return
		}
		if err := m.store.Update(r.Context(), scoped, encoded, m.ttl); err != nil {
			log.Warn().Err(err).Msg("failed to store idempotent response")
		}
	})
}

// replay writes a stored response. Values that are not a storedResponse
// envelope are replayed verbatim with 200.
func replay(w http.ResponseWriter, cached []byte) {
	status, body := http.StatusOK, cached
	var stored storedResponse
	if err := json.Unmarshal(cached, &stored); err == nil && stored.Status != 0 {
		status, body = stored.Status, stored.Body
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Idempotency-Replay", "true")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func rawBody(b []byte) json.RawMessage {
	if !json.Valid(b) {
		quoted, _ := json.Marshal(string(b))
		return quoted
	}
	return b
}
