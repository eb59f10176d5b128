// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// CacheStatus is a snapshot of the repository info cache.
type CacheStatus struct {
	// Cached is true once an entry has been stored and not cleared, even if
	// it has since expired.
	Cached bool `json:"cached"`
	// Timestamp is the capture time of the entry; zero when nothing is cached.
	Timestamp time.Time `json:"timestamp"`
	// Age is how long ago the entry was captured. JSON carries it as whole
	// milliseconds under "age_ms".
	Age time.Duration `json:"-"`
	// Valid is true while the entry is younger than the cache window.
	Valid bool `json:"valid"`
}

type cacheStatusJSON struct {
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
	AgeMS     int64     `json:"age_ms"`
	Valid     bool      `json:"valid"`
}

func (s CacheStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(cacheStatusJSON{
		Cached:    s.Cached,
		Timestamp: s.Timestamp,
		AgeMS:     s.Age.Milliseconds(),
		Valid:     s.Valid,
	})
}

func (s *CacheStatus) UnmarshalJSON(data []byte) error {
	var raw cacheStatusJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = CacheStatus{
		Cached:    raw.Cached,
		Timestamp: raw.Timestamp,
		Age:       time.Duration(raw.AgeMS) * time.Millisecond,
		Valid:     raw.Valid,
	}
	return nil
}
