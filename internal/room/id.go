package room

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const roomCodeLength = 5

var (
	ulidEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	ulidEntropyMu sync.Mutex
)

// NewSessionID returns an opaque token unique within the process lifetime.
func NewSessionID() string {
	ulidEntropyMu.Lock()
	defer ulidEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// newCodeCandidate draws a short human-typeable room code from UUID entropy.
// Uniqueness against live rooms is the store's job.
func newCodeCandidate() string {
	return strings.ToUpper(uuid.NewString()[:roomCodeLength])
}
