package memory

import "time"

type Clock interface {
	Now() time.Time
}

func WithClock(clock Clock) JournalOption {
	return func(journal *Journal) {
		journal.clock = clock
	}
}

type defaultClock struct{}

func (defaultClock) Now() time.Time {
	return time.Now()
}
