package mocks

import (
	"fmt"

	"github.com/mikepoirier/word-game/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing. It returns
// queued results in order, then falls back to deterministic sequential
// strings so code-uniqueness loops always terminate.
type MockRandom struct {
	StringResults []string
	stringIndex   int
	fallback      int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result, or a generated fallback
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex < len(r.StringResults) {
		result := r.StringResults[r.stringIndex]
		r.stringIndex++
		return result
	}
	r.fallback++
	return fmt.Sprintf("CODE%04d", r.fallback)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
