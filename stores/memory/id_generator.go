package memory

import (
	"math/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/weegigs/wee-counter-go/we"
)

type IDGenerator interface {
	Create() we.MessageID
}

func WithIdGenerator(generator IDGenerator) JournalOption {
	return func(journal *Journal) {
		journal.ids = generator
	}
}

func NewDefaultIdGenerator(clock Clock) IDGenerator {
	return &DefaultIdGenerator{
		clock:   clock,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(clock.Now().UnixNano())), 0),
	}
}

type DefaultIdGenerator struct {
	lk      sync.Mutex
	clock   Clock
	entropy *ulid.MonotonicEntropy
}

func (g *DefaultIdGenerator) Create() we.MessageID {
	g.lk.Lock()
	defer g.lk.Unlock()

	v := ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy).String()
	return we.MessageID(v)
}
