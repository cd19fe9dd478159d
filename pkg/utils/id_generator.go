// Package utils provides common utility functions.
package utils

import "github.com/google/uuid"

// GenerateTrackingCode generates the opaque code attached to server-side
// failures so operators can correlate a client report with the logs.
func GenerateTrackingCode() string {
	return uuid.New().String()
}

// GenerateCorrelationID generates a plain UUID string for request correlation.
func GenerateCorrelationID() string {
	return uuid.New().String()
}
