package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
)

const (
	// CronSecretHeader carries the scheduler's shared secret.
	CronSecretHeader = "X-Cron-Secret"
	// SignatureHeader carries the hex HMAC-SHA256 of a webhook body.
	SignatureHeader = "X-Signature"

	maxWebhookBody = 1 << 20
)

// CronSecret admits requests presenting the shared secret either as a bearer
// token or in X-Cron-Secret. An empty secret disables the check.
func CronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(CronSecretHeader)
			if presented == "" {
				presented, _ = bearerToken(r.Header.Get("Authorization"))
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid cron secret")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WebhookSignature verifies X-Signature against the request body. The body
// is buffered and handed on unchanged. An empty secret disables the check.
func WebhookSignature(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody+1))
			if err != nil {
				writeError(w, http.StatusBadRequest, "unreadable body")
				return
			}
			if len(body) > maxWebhookBody {
				writeError(w, http.StatusRequestEntityTooLarge, "body too large")
				return
			}

			if !validSignature(secret, body, r.Header.Get(SignatureHeader)) {
				writeError(w, http.StatusUnauthorized, "invalid signature")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func validSignature(secret string, body []byte, header string) bool {
	header = strings.TrimPrefix(strings.TrimSpace(header), "sha256=")
	got, err := hex.DecodeString(header)
	if err != nil || len(got) == 0 {
		return false
	}
	want, _ := hex.DecodeString(Sign(secret, body))
	return hmac.Equal(got, want)
}
