package calculation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// balancePrecision bounds the digits carried through month-by-month projections.
const balancePrecision int32 = 12

var (
	yenPerMan = decimal.NewFromInt(10000)
	one       = decimal.NewFromInt(1)
	twelve    = decimal.NewFromInt(12)
)

// SafeNumber coerces an arbitrary decoded value into a decimal. Nil, NaN,
// infinities and anything unparseable yield def.
func SafeNumber(v interface{}, def decimal.Decimal) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return def
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return def
		}
		return *x
	case float64:
		return fromFloat(x, def)
	case float32:
		return fromFloat(float64(x), def)
	case int:
		return decimal.NewFromInt(int64(x))
	case int8:
		return decimal.NewFromInt(int64(x))
	case int16:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case uint:
		return decimal.NewFromInt(int64(x))
	case uint8:
		return decimal.NewFromInt(int64(x))
	case uint16:
		return decimal.NewFromInt(int64(x))
	case uint32:
		return decimal.NewFromInt(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return def
		}
		return decimal.NewFromInt(int64(x))
	case bool:
		if x {
			return one
		}
		return decimal.Zero
	case json.Number:
		return fromString(x.String(), def)
	case string:
		return fromString(x, def)
	case fmt.Stringer:
		return fromString(x.String(), def)
	default:
		return def
	}
}

var (
	minInt = decimal.NewFromInt(math.MinInt)
	maxInt = decimal.NewFromInt(math.MaxInt)
)

// SafeInt coerces like SafeNumber and truncates toward zero.
func SafeInt(v interface{}, def int) int {
	d := SafeNumber(v, decimal.NewFromInt(int64(def))).Truncate(0)
	if d.LessThan(minInt) || d.GreaterThan(maxInt) {
		return def
	}
	return int(d.IntPart())
}

func fromFloat(f float64, def decimal.Decimal) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return decimal.NewFromFloat(f)
}

func fromString(s string, def decimal.Decimal) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return d
}

// powInt raises base to a non-negative integer power.
func powInt(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for ; n > 0; n-- {
		result = result.Mul(base).Round(balancePrecision)
	}
	return result
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
