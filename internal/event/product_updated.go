package event

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// ProductUpdated is the payload of the product-updated integration event.
// Prices are carried in minor currency units (pence).
type ProductUpdated struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PricePence  int64  `json:"pricePence"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updatedAt"`
}

// Violation messages are part of the integration contract; upstream producers
// match on the exact texts, so they must not be reworded.
const (
	MsgNotObject   = "Body must be a JSON object."
	MsgID          = "id must be a non-empty string"
	MsgName        = "name must be a non-empty string"
	MsgPricePence  = "pricePence must be a non-negative integer"
	MsgDescription = "description must be a string"
	MsgUpdatedAt   = "updatedAt must be a valid ISO-8601 timestamp"
)

// updatedAtLayout is the canonical timestamp serialization: UTC with
// millisecond precision. A payload timestamp is only accepted when it
// re-serializes byte-identically through this layout.
const updatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ValidateProductUpdated checks a decoded JSON body against the product-updated
// contract. The body must be decoded with json.Number (see the HTTP handler) so
// integer checks are exact. On success the returned event carries the payload
// fields verbatim; trimming is applied only for the emptiness checks, never to
// the stored values. On failure the returned messages are in the fixed order
// id, name, pricePence, description, updatedAt; a non-object body yields the
// single not-an-object message and no per-field checks.
func ValidateProductUpdated(body any) (ProductUpdated, []string) {
	obj, ok := body.(map[string]any)
	if !ok {
		return ProductUpdated{}, []string{MsgNotObject}
	}

	var (
		ev         ProductUpdated
		violations []string
	)

	if s, ok := obj["id"].(string); ok && strings.TrimSpace(s) != "" {
		ev.ID = s
	} else {
		violations = append(violations, MsgID)
	}

	if s, ok := obj["name"].(string); ok && strings.TrimSpace(s) != "" {
		ev.Name = s
	} else {
		violations = append(violations, MsgName)
	}

	if n, ok := asNonNegativeInt(obj["pricePence"]); ok {
		ev.PricePence = n
	} else {
		violations = append(violations, MsgPricePence)
	}

	if s, ok := obj["description"].(string); ok {
		ev.Description = s
	} else {
		violations = append(violations, MsgDescription)
	}

	if s, ok := obj["updatedAt"].(string); ok && isCanonicalTimestamp(s) {
		ev.UpdatedAt = s
	} else {
		violations = append(violations, MsgUpdatedAt)
	}

	if len(violations) > 0 {
		return ProductUpdated{}, violations
	}

	return ev, nil
}

// asNonNegativeInt reports whether v is a JSON number with a non-negative
// integer value. Integer-valued floats such as 3.0 or 5e2 count as integers;
// anything with a fractional component does not.
func asNonNegativeInt(v any) (int64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}

	if n, err := num.Int64(); err == nil {
		return n, n >= 0
	}

	// float64(MaxInt64) rounds up to 2^63, so the bound must be exclusive to
	// keep int64(f) from overflowing.
	f, err := num.Float64()
	if err != nil || f < 0 || f >= math.MaxInt64 || math.Trunc(f) != f {
		return 0, false
	}

	return int64(f), true
}

// isCanonicalTimestamp reports whether s parses as an RFC 3339 timestamp and
// re-serializes byte-identically through the canonical layout. Valid but
// non-canonical encodings (missing milliseconds, non-UTC offsets) are rejected.
func isCanonicalTimestamp(s string) bool {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return false
	}
	return t.UTC().Format(updatedAtLayout) == s
}
