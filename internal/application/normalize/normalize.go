// Package normalize coerces loosely-typed inbound record fields into the
// canonical shapes the stores expect. Payloads arrive from spreadsheet
// imports and third-party webhooks, so numbers may be strings, blanks may
// stand in for nulls, and names may come split or composed.
package normalize

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const externalIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ExternalID builds a business identifier like "member_1717171717171_k3j9x0q2f":
// prefix, millisecond timestamp, and a short random base36 suffix.
func ExternalID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = externalIDAlphabet[rand.Intn(len(externalIDAlphabet))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// ComposeName joins first and paternal last name, tolerating either part
// being empty.
func ComposeName(first, paternal string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(paternal))
}

// Money parses a money-ish value (number, numeric string, json.Number) into
// a decimal. Nil, blank, and unparseable inputs yield nil.
func Money(v any) *decimal.Decimal {
	d, ok := parseDecimal(v)
	if !ok {
		return nil
	}
	return &d
}

// MoneyOrZero is Money with a zero fallback instead of nil.
func MoneyOrZero(v any) decimal.Decimal {
	d, ok := parseDecimal(v)
	if !ok {
		return decimal.Zero
	}
	return d
}

func parseDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Decimal{}, false
	case decimal.Decimal:
		return t, true
	case *decimal.Decimal:
		if t == nil {
			return decimal.Decimal{}, false
		}
		return *t, true
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

// Text converts a free-text value to a trimmed *string, mapping nil and
// blank input to nil so the column stores NULL instead of "".
func Text(v any) *string {
	s, ok := stringify(v)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// TextOr is Text with a fallback for nil/blank input.
func TextOr(v any, def string) string {
	if p := Text(v); p != nil {
		return *p
	}
	return def
}

// NumericText renders a count-like value as its string form, defaulting
// blank or missing input to def (typically "0"). Values are kept as text
// to round-trip the upstream sheet columns unchanged.
func NumericText(v any, def string) string {
	switch t := v.(type) {
	case nil:
	case float64:
		return decimal.NewFromFloat(t).String()
	case int:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	case json.Number:
		return t.String()
	default:
		if s, ok := stringify(v); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return def
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	case json.Number:
		return t.String(), true
	case float64:
		return decimal.NewFromFloat(t).String(), true
	case int:
		return fmt.Sprintf("%d", t), true
	case int64:
		return fmt.Sprintf("%d", t), true
	case bool:
		return fmt.Sprintf("%t", t), true
	}
	return "", false
}

// Date parses a calendar date in "2006-01-02" form, returning nil for
// blank or malformed input.
func Date(v any) *time.Time {
	s, ok := stringify(v)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
