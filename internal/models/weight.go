package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Scale weights are bounded by the largest platform scale on the floor.
var (
	weightMin = decimal.Zero
	weightMax = decimal.NewFromInt(10000)
)

// Weight is a measured weight in kilograms, clamped to [0, 10000] and
// stored with 2 decimal places.
type Weight struct {
	decimal.Decimal
}

// NewWeightFromDecimal clamps and rounds a decimal into a Weight.
func NewWeightFromDecimal(value decimal.Decimal) Weight {
	return Weight{Decimal: clampWeight(value)}
}

// NewWeightFromFloat clamps and rounds a float into a Weight.
func NewWeightFromFloat(value float64) Weight {
	return NewWeightFromDecimal(decimal.NewFromFloat(value))
}

// Normalize re-applies clamping and rounding. Used on values received
// from callers that built the Weight directly.
func (w Weight) Normalize() Weight {
	return Weight{Decimal: clampWeight(w.Decimal)}
}

func clampWeight(value decimal.Decimal) decimal.Decimal {
	if value.LessThan(weightMin) {
		value = weightMin
	}
	if value.GreaterThan(weightMax) {
		value = weightMax
	}
	return value.Round(2)
}

// MarshalJSON renders the weight as a 2-decimal string.
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON parses a weight from a string or number.
func (w *Weight) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		w.Decimal = clampWeight(d)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	w.Decimal = clampWeight(decimal.NewFromFloat(f))
	return nil
}

// Value implements driver.Valuer for database writes.
func (w Weight) Value() (driver.Value, error) {
	return w.Decimal.Round(2).Value()
}

// Scan implements sql.Scanner for database reads.
func (w *Weight) Scan(value interface{}) error {
	if err := w.Decimal.Scan(value); err != nil {
		return err
	}
	w.Decimal = w.Decimal.Round(2)
	return nil
}

// String returns the 2-decimal representation.
func (w Weight) String() string {
	return w.Decimal.Round(2).StringFixed(2)
}
