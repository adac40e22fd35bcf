package services

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Amount is a money value as the backend serializes it: DRF decimal fields
// arrive as JSON strings ("12.50"), aggregates as raw numbers. Both decode
// into the same representation.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "[Amount.UnmarshalJSON] string value")
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// Float64 parses the amount; an empty amount is zero.
func (a Amount) Float64() (float64, error) {
	if a == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(string(a), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "[Amount.Float64] %q", string(a))
	}
	return v, nil
}
