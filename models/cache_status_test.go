package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStatus_AgeInMilliseconds(t *testing.T) {
	status := CacheStatus{
		Cached:    true,
		Timestamp: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		Age:       1500*time.Millisecond + 700*time.Microsecond,
		Valid:     true,
	}

	data, err := json.Marshal(status)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cached":true,"timestamp":"2026-10-01T12:00:00Z","age_ms":1500,"valid":true}`, string(data))

	var back CacheStatus
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 1500*time.Millisecond, back.Age)
	assert.True(t, back.Timestamp.Equal(status.Timestamp))
}

func TestCacheStatus_EmptyMarshalsZeroAge(t *testing.T) {
	data, err := json.Marshal(CacheStatus{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"age_ms":0`)
}
