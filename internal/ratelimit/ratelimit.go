// Package ratelimit implements multi-rule request rate limiting. A named
// limiter evaluates every configured rule against its own counter; a request
// is rejected when any rule's window is exhausted. Counters live behind the
// CounterStore interface so deployments can choose between in-process memory
// and a shared Redis store.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"passport/internal/errors"
)

// KeyKind selects which request identity a rule counts by.
type KeyKind string

const (
	// KindIP counts by source IP address.
	KindIP KeyKind = "ip"
	// KindIPUA counts by source IP combined with the client's user-agent signature.
	KindIPUA KeyKind = "ipua"
	// KindCookie counts by the signed limiter cookie id assigned during preflight.
	KindCookie KeyKind = "cookie"
)

// Rule is one independent rate rule: at most Max attempts per Window for each key.
type Rule struct {
	Kind   KeyKind
	Max    int
	Window time.Duration
}

// Request carries the identities a limiter may key by. CookieID is the
// verified opaque id from the limiter cookie, empty when the browser has not
// completed preflight.
type Request struct {
	IP        string
	UserAgent string
	CookieID  string
}

// Result reports the limiter decision. RetryAfter is the longest remaining
// window among the rules that rejected the request.
type Result struct {
	Limited    bool
	RetryAfter time.Duration
}

// Checker is the limiter surface consumed by the auth flows.
type Checker interface {
	Check(ctx context.Context, req Request) (Result, error)
}

// Limiter evaluates a fixed set of rules against a counter store.
// The limiter itself is stateless; all counts live in the store.
type Limiter struct {
	name  string
	rules []Rule
	store CounterStore
}

// New creates a named limiter. The name namespaces counter keys so several
// limiters can share one store.
func New(name string, store CounterStore, rules ...Rule) *Limiter {
	return &Limiter{
		name:  name,
		rules: rules,
		store: store,
	}
}

// Check counts the request against every rule and reports whether any rule
// rejected it. Counting is increment-and-read in one atomic store step, so two
// concurrent requests can never both observe the last free slot.
func (l *Limiter) Check(ctx context.Context, req Request) (Result, error) {
	var result Result

	for _, rule := range l.rules {
		key, ok := l.key(rule.Kind, req)
		if !ok {
			// A cookie rule without a preflighted cookie cannot be counted.
			// Reject instead of waving the request through unmetered.
			result.Limited = true
			if rule.Window > result.RetryAfter {
				result.RetryAfter = rule.Window
			}

			continue
		}

		count, remaining, err := l.store.Incr(ctx, key, rule.Window)
		if err != nil {
			return Result{}, errors.Wrapf(err, "increment rate counter %q", key)
		}

		if count > int64(rule.Max) {
			result.Limited = true
			if remaining > result.RetryAfter {
				result.RetryAfter = remaining
			}
		}
	}

	return result, nil
}

// key derives the namespaced counter key for a rule, or reports that the
// request carries no usable identity for this rule.
func (l *Limiter) key(kind KeyKind, req Request) (string, bool) {
	switch kind {
	case KindIP:
		if req.IP == "" {
			return "", false
		}

		return l.name + ":ip:" + req.IP, true
	case KindIPUA:
		if req.IP == "" {
			return "", false
		}
		ua := sha256.Sum256([]byte(req.UserAgent))

		return l.name + ":ipua:" + req.IP + ":" + hex.EncodeToString(ua[:8]), true
	case KindCookie:
		if req.CookieID == "" {
			return "", false
		}

		return l.name + ":cookie:" + req.CookieID, true
	default:
		return "", false
	}
}
