package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard timestamp and id
	changedAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "3f1d7a0e-9c4b-4a6d-8f21-0b5a7d9e1c33"

	token := EncodeToken(changedAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTs, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, changedAt, decodedTs, "Timestamp should match after decode")
	assert.Equal(t, id, decodedID, "Id should match after decode")

	// Test case 2: Zero time value
	zeroToken := EncodeToken(time.Time{}, "x")
	decodedZero, decodedZeroID, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, time.Time{}, decodedZero, "Zero time should match after decode")
	assert.Equal(t, "x", decodedZeroID)

	// Test case 3: Current time values
	now := time.Now().UTC()
	nowToken := EncodeToken(now, id)
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")

	// Ids containing the separator survive the round trip
	sepToken := EncodeToken(changedAt, "a|b")
	_, decodedSepID, err := DecodeToken(sepToken)
	assert.NoError(t, err)
	assert.Equal(t, "a|b", decodedSepID)
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded timestamp without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid timestamp
	invalidTsToken := "bm90YWRhdGV8c29tZS1pZA==" // Base64 encoded "notadate|some-id"
	_, _, err = DecodeToken(invalidTsToken)
	assert.Error(t, err, "Should return an error for invalid timestamp format")
	assert.Contains(t, err.Error(), "timestamp parse", "Error should mention timestamp parsing issue")
}
