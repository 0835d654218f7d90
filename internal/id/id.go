package id

import "github.com/google/uuid"

// New returns a random identifier for a transient object such as a quiz
// presentation or an HTTP request.
func New() string {
	return uuid.NewString()
}
