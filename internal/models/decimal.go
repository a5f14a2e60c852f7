package models

import (
	"database/sql/driver"
	"strconv"
	"strings"
)

// Decimal maps a decimal(p,s) column to float64. Drivers hand decimals back as
// float64, int64, []byte or string depending on dialect; anything unparsable
// scans as zero.
type Decimal float64

func (d Decimal) Value() (driver.Value, error) {
	return float64(d), nil
}

func (d *Decimal) Scan(value interface{}) error {
	*d = Decimal(ToFloat(value))
	return nil
}

// Float64 returns the native value
func (d Decimal) Float64() float64 {
	return float64(d)
}

// ToFloat converts a raw store value to float64, returning 0 for nil or
// unparsable input
func ToFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	default:
		return 0
	}
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
