package requestutil

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
var useFallback atomic.Bool

// SanitizeRequestID validates the incoming request ID header and generates a new one when invalid.
func SanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID generates a random request ID with a time-based fallback.
func NewRequestID() string {
	var b [8]byte
	if !useFallback.Load() {
		if _, err := rand.Read(b[:]); err == nil {
			return hex.EncodeToString(b[:])
		}
	}
	return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
}

// ClientIP extracts the client IP from X-Forwarded-For or RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
		return forwarded
	}
	return r.RemoteAddr
}

// ErrInvalidParam reports a query parameter that is missing or malformed.
var ErrInvalidParam = errors.New("invalid query parameter")

// PositiveIntParam parses key from the query string as an integer >= 1.
func PositiveIntParam(r *http.Request, key string) (int, error) {
	raw := QueryParam(r, key)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidParam, key)
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidParam, key)
	}
	return val, nil
}

// BoolParam reports whether key is set to a truthy value ("1", "true", "yes").
func BoolParam(r *http.Request, key string) bool {
	switch strings.ToLower(QueryParam(r, key)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// QueryParam returns the trimmed value of key, or "" when absent.
func QueryParam(r *http.Request, key string) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(key))
}
