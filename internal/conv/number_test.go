package conv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsInt64(t *testing.T) {
	var testCases = []struct {
		value    interface{}
		expected int64
		ok       bool
	}{
		{value: float64(45), expected: 45, ok: true},
		{value: 45, expected: 45, ok: true},
		{value: int64(1700000000000), expected: 1700000000000, ok: true},
		{value: json.Number("12"), expected: 12, ok: true},
		{value: json.Number("12.5"), expected: 12, ok: true},
		{value: "12", ok: false},
		{value: true, ok: false},
		{value: nil, ok: false},
	}
	for _, testCase := range testCases {
		actual, ok := AsInt64(testCase.value)
		assert.Equal(t, testCase.ok, ok, "%v", testCase.value)
		assert.Equal(t, testCase.expected, actual, "%v", testCase.value)
	}
}

func TestParseInt64(t *testing.T) {
	n, err := ParseInt64("3600")
	assert.NoError(t, err)
	assert.EqualValues(t, 3600, n)
	n, err = ParseInt64("180.0")
	assert.NoError(t, err)
	assert.EqualValues(t, 180, n)
	_, err = ParseInt64("lol")
	assert.Error(t, err)
}
