// Package contract defines the structural contract of the Orbit API's
// OpenAPI document as a battery of independent checks. Every check is a pure
// read over the loaded document; none mutates shared state and none depends
// on another check having run first, so a harness may run them in any order
// or in parallel.
package contract

import (
	"github.com/orbit-sync/orbitspec/internal/models"
	"github.com/orbit-sync/orbitspec/internal/specdoc"
)

// Check is one independently runnable contract check.
type Check struct {
	// ID is a stable identifier used for harness selection and output.
	ID          string
	Description string
	Run         func(doc *specdoc.Document) []models.Violation
}

// All returns the full check battery in a stable order.
func All() []Check {
	out := make([]Check, len(registry))
	copy(out, registry)
	return out
}

// Find returns the check with the given ID.
func Find(id string) (Check, bool) {
	for _, c := range registry {
		if c.ID == id {
			return c, true
		}
	}
	return Check{}, false
}
