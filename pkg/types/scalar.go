package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Scalar is a nullable field value as the admin API returns it: a JSON
// string, number or boolean, or null. The value is kept in its textual form
// because it round-trips through form inputs and query strings as text.
type Scalar struct {
	Value string
	Valid bool
}

// ScalarOf returns a Scalar for s. The empty string is treated as null.
func ScalarOf(s string) Scalar {
	if s == "" {
		return Scalar{}
	}
	return Scalar{Value: s, Valid: true}
}

// ScalarInt returns a valid Scalar holding n.
func ScalarInt(n int) Scalar {
	return Scalar{Value: strconv.Itoa(n), Valid: true}
}

// String returns the value, or "" when null.
func (s Scalar) String() string {
	if !s.Valid {
		return ""
	}
	return s.Value
}

// Int parses the value as an integer. Decimal values with a zero fraction
// ("24.0") are accepted since the server reports floored values that way.
func (s Scalar) Int() (int, error) {
	if !s.Valid {
		return 0, fmt.Errorf("%w: null", ErrInvalidNumber)
	}
	v := strings.TrimSpace(s.Value)
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s.Value)
	}
	return int(f), nil
}

// UnmarshalJSON accepts null, strings, numbers and booleans.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = Scalar{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar{Value: str, Valid: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Scalar{Value: n.String(), Valid: true}
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("scalar: unsupported JSON value %s", data)
	}
	*s = Scalar{Value: strconv.FormatBool(b), Valid: true}
	return nil
}

// MarshalJSON writes null for an invalid Scalar and a JSON string otherwise.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}
