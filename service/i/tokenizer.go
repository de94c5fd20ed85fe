package i

import (
	"time"
)

// Tokenizer issues and checks the bearer tokens guarding the solver API.
type Tokenizer interface {
	// Generate creates a token for subject that expires after expTime.
	Generate(subject string, expTime time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
