// Package uuid issues the time-ordered identifiers used to correlate log
// lines of one request or one alert cycle.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. IDs sort by creation time, so log records of
// consecutive cycles stay in order when grepped. Falls back to a random v4
// if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}
