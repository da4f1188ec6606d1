package pkg

import "github.com/google/uuid"

// GenerateSessionID returns a new random session identifier.
func GenerateSessionID() string {
	return uuid.New().String()
}
