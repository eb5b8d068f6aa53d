package token

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	var testCases = []struct {
		description string
		record      map[string]interface{}
		field       string
	}{
		{
			description: "refresh token is not a string",
			record:      map[string]interface{}{"refreshToken": 45, "accessToken": "t", "expirationTime": 3},
			field:       "refreshToken",
		},
		{
			description: "access token is not a string",
			record:      map[string]interface{}{"refreshToken": "t", "accessToken": 45, "expirationTime": 3},
			field:       "accessToken",
		},
		{
			description: "expiration time is not a number",
			record:      map[string]interface{}{"refreshToken": "t", "accessToken": "t", "expirationTime": "lol"},
			field:       "expirationTime",
		},
	}
	for _, testCase := range testCases {
		_, err := FromJSON("app", testCase.record)
		require.Error(t, err, testCase.description)
		assert.ErrorIs(t, err, ErrInternal, testCase.description)
		var cacheErr *Error
		require.True(t, errors.As(err, &cacheErr), testCase.description)
		assert.Equal(t, "app", cacheErr.Owner, testCase.description)
		assert.Equal(t, testCase.field, cacheErr.Field, testCase.description)
	}
}

func TestFromJSON_BuildsCache(t *testing.T) {
	cache, err := FromJSON("app", map[string]interface{}{
		"refreshToken":   "r",
		"accessToken":    "a",
		"expirationTime": 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "a", cache.AccessToken())
	assert.Equal(t, "r", cache.RefreshToken())
	assert.EqualValues(t, 45, cache.ExpirationTime().UnixMilli())
}

func TestFromJSON_NullFields(t *testing.T) {
	cache, err := FromJSON("app", map[string]interface{}{
		"refreshToken":   nil,
		"accessToken":    "a",
		"expirationTime": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "a", cache.AccessToken())
	assert.Empty(t, cache.RefreshToken())
	assert.True(t, cache.ExpirationTime().IsZero())
	assert.False(t, cache.IsExpired())
}

func TestCache_ToJSON(t *testing.T) {
	assert.Equal(t, map[string]interface{}{
		"refreshToken":   nil,
		"accessToken":    nil,
		"expirationTime": nil,
	}, New().ToJSON())

	cache := New(WithCredentials("a", "r", time.UnixMilli(45)))
	assert.Equal(t, map[string]interface{}{
		"refreshToken":   "r",
		"accessToken":    "a",
		"expirationTime": int64(45),
	}, cache.ToJSON())
}

func TestCache_MarshalDecode(t *testing.T) {
	cache := New(WithCredentials("a", "r", time.UnixMilli(1_700_000_000_123)))
	data, err := json.Marshal(cache)
	require.NoError(t, err)
	assert.JSONEq(t, `{"refreshToken":"r","accessToken":"a","expirationTime":1700000000123}`, string(data))

	restored, err := Decode("app", data)
	require.NoError(t, err)
	assert.Equal(t, cache.ToJSON(), restored.ToJSON())

	_, err = Decode("app", []byte(`{"expirationTime":"soon"}`))
	assert.ErrorIs(t, err, ErrInternal)
	_, err = Decode("app", []byte(`null`))
	assert.ErrorIs(t, err, ErrInternal)
	_, err = Decode("app", []byte(`{`))
	assert.ErrorIs(t, err, ErrInternal)
}
