package state

import (
	"crypto/rand"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid"
)

type IDGenerator interface {
	NewID() string
}

// ULIDGenerator yields lexically time-ordered ids.
type ULIDGenerator struct{}

func (ULIDGenerator) NewID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix+n for n = start, start+1, ...
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int64
}

func NewSequenceGenerator(prefix string, start int64) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix, next: start}
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.prefix + strconv.FormatInt(g.next, 10)
	g.next++
	return id
}
