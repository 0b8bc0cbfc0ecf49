package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	goalIDPrefix       = "lg-"
	reflectionIDPrefix = "rf-"
)

// newID generates a random identifier with the given prefix. Random bytes
// rather than a creation timestamp, so two records created in the same
// clock tick cannot collide.
func newID(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing is effectively fatal; fall back to a
		// timestamp so record creation still works
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
	}
	return prefix + hex.EncodeToString(bytes)
}

func newGoalID() string {
	return newID(goalIDPrefix)
}

func newReflectionID() string {
	return newID(reflectionIDPrefix)
}
