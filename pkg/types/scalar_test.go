package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Scalar
	}{
		{"null", `null`, Scalar{}},
		{"string", `"water"`, Scalar{Value: "water", Valid: true}},
		{"empty string stays valid", `""`, Scalar{Value: "", Valid: true}},
		{"integer", `24`, Scalar{Value: "24", Valid: true}},
		{"float", `52.5125`, Scalar{Value: "52.5125", Valid: true}},
		{"bool", `true`, Scalar{Value: "true", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Scalar
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var s Scalar
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestScalarInt(t *testing.T) {
	n, err := ScalarOf("24").Int()
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = ScalarOf("36.0").Int()
	require.NoError(t, err)
	assert.Equal(t, 36, n)

	_, err = ScalarOf("36.5").Int()
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = Scalar{}.Int()
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestScalarOfEmptyIsNull(t *testing.T) {
	assert.False(t, ScalarOf("").Valid)
	assert.Equal(t, "", Scalar{}.String())
	assert.Equal(t, "7", ScalarInt(7).String())

	out, err := json.Marshal(struct {
		A Scalar `json:"a"`
		B Scalar `json:"b"`
	}{A: ScalarOf("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(out))
}
