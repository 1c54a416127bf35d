package fields

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Fee sanitizes a monetary application fee. Numeric strings are accepted
// and parsed; fractional values are floored to whole units per the integer
// persistence contract. Success requires 0 < amount <= 1,000,000. The
// sanitized value lives in Result.Amount, not Result.Sanitized.
func Fee(v any) (res Result) {
	defer recoverGuard(&res)

	f, ok := feeValue(v)
	if !ok {
		res.addIssue("invalid fee value")
		return res
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		res.addIssue("invalid fee value")
		return res
	}

	amount := int64(math.Floor(f))
	if amount <= 0 || amount > MaxFee {
		res.addIssue("fee out of range")
		return res
	}

	res.Amount = amount
	res.Success = true
	return res
}

func feeValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
