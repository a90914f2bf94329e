package pkg

import "github.com/google/uuid"

// GenerateGameID returns a new random game session ID.
func GenerateGameID() string {
	return uuid.NewString()
}
