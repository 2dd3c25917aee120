package objsys

import (
	"sync/atomic"

	"github.com/cwbudde/redart/internal/object"
)

var refKeyCounter uint64

// NewRefKey returns a fresh, process-wide unique RefKey. Keys start at
// 1; 0 is reserved to mean "no key" (an empty `this` slot).
func NewRefKey() object.RefKey {
	return object.RefKey(atomic.AddUint64(&refKeyCounter, 1))
}
