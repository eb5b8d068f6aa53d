package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/sts/internal/conv"
)

const (
	fieldRefreshToken   = "refreshToken"
	fieldAccessToken    = "accessToken"
	fieldExpirationTime = "expirationTime"
)

// ToJSON returns the persisted record; absent values are nil.
func (c *Cache) ToJSON() map[string]interface{} {
	c.mux.RLock()
	defer c.mux.RUnlock()
	record := map[string]interface{}{
		fieldRefreshToken:   nil,
		fieldAccessToken:    nil,
		fieldExpirationTime: nil,
	}
	if c.refreshToken != "" {
		record[fieldRefreshToken] = c.refreshToken
	}
	if c.accessToken != "" {
		record[fieldAccessToken] = c.accessToken
	}
	if !c.expirationTime.IsZero() {
		record[fieldExpirationTime] = c.expirationTime.UnixMilli()
	}
	return record
}

// MarshalJSON encodes the persisted record.
func (c *Cache) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToJSON())
}

// FromJSON restores a cache from a persisted record. Wrong field types fail with
// an ErrInternal error tagged with owner.
func FromJSON(owner string, record map[string]interface{}, options ...Option) (*Cache, error) {
	refreshToken, err := stringField(owner, record, fieldRefreshToken)
	if err != nil {
		return nil, err
	}
	accessToken, err := stringField(owner, record, fieldAccessToken)
	if err != nil {
		return nil, err
	}
	var expiration time.Time
	if value, ok := record[fieldExpirationTime]; ok && value != nil {
		millis, ok := conv.AsInt64(value)
		if !ok {
			return nil, internalError(owner, "fromJSON", fieldExpirationTime, fmt.Errorf("expected number, got %T", value))
		}
		expiration = time.UnixMilli(millis)
	}
	ret := New(options...)
	ret.owner = owner
	ret.accessToken = accessToken
	ret.refreshToken = refreshToken
	ret.expirationTime = expiration
	return ret, nil
}

// Decode restores a cache from JSON produced by MarshalJSON.
func Decode(owner string, data []byte, options ...Option) (*Cache, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var record map[string]interface{}
	if err := decoder.Decode(&record); err != nil {
		return nil, internalError(owner, "fromJSON", "", err)
	}
	if record == nil {
		return nil, internalError(owner, "fromJSON", "", fmt.Errorf("empty record"))
	}
	return FromJSON(owner, record, options...)
}

func stringField(owner string, record map[string]interface{}, name string) (string, error) {
	value, ok := record[name]
	if !ok || value == nil {
		return "", nil
	}
	text, ok := value.(string)
	if !ok {
		return "", internalError(owner, "fromJSON", name, fmt.Errorf("expected string, got %T", value))
	}
	return text, nil
}
