package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID string (time-sortable identifier).
//
// Run records keyed by ULID sort lexicographically by creation time, which
// is exactly what the journal indexes want.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), mono)
	if err != nil {
		// Only possible if the entropy source fails or time goes backwards.
		panic(err)
	}
	return id.String()
}
