package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantKind RawKind
		wantText string
		wantNum  float64
	}{
		{"number", `15000.5`, RawNumber, "", 15000.5},
		{"integer", `3`, RawNumber, "", 3},
		{"decimal string", `"15000.50"`, RawString, "15000.50", 0},
		{"null", `null`, RawEmpty, "", 0},
		{"bool", `true`, RawInvalid, "true", 0},
		{"object", `{"a":1}`, RawInvalid, `{"a":1}`, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r Raw
			require.NoError(t, json.Unmarshal([]byte(c.input), &r))
			assert.Equal(t, c.wantKind, r.Kind())

			if n, ok := r.Number(); ok {
				assert.Equal(t, c.wantNum, n)
			}
			if s, ok := r.Text(); ok {
				assert.Equal(t, c.wantText, s)
			}
		})
	}
}

func TestRawMissingFieldIsEmpty(t *testing.T) {
	var in LoanInput
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 1000, "rate": "4.5"}`), &in))

	assert.Equal(t, RawNumber, in.Amount.Kind())
	assert.Equal(t, RawString, in.Rate.Kind())
	assert.True(t, in.Years.IsEmpty())
}

func TestRawKeyDistinguishesKinds(t *testing.T) {
	assert.NotEqual(t, Num(5).Key(), Str("5").Key())
	assert.NotEqual(t, Str("5").Key(), Str("5.0").Key())
	assert.Equal(t, Int(5).Key(), Num(5).Key())
	assert.Equal(t, "-", Raw{}.Key())
}

func TestRawMarshalRoundTrip(t *testing.T) {
	in := LoanInput{Amount: Num(1000.25), Rate: Str("4.5"), Years: Int(3)}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":1000.25,"rate":"4.5","years":3}`, string(b))

	var out LoanInput
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestInterestInputFrequencyDefault(t *testing.T) {
	assert.Equal(t, Int(1), InterestInput{}.FrequencyOrDefault())
	assert.Equal(t, Str("12"), InterestInput{Frequency: Str("12")}.FrequencyOrDefault())
}
