package memstore

import (
	"context"
	"sync"

	"myregistry/domain"
	"myregistry/interfaces"
)

// DefaultJournalCapacity bounds the journey journal when no capacity is given.
const DefaultJournalCapacity = 1000

// Journal is a bounded in-memory interfaces.Journal. When full, the oldest journey is dropped.
type Journal struct {
	capacity int

	mu       sync.Mutex
	journeys []domain.Journey
}

var _ interfaces.Journal = (*Journal)(nil)

// NewJournal creates a journal holding at most capacity journeys (DefaultJournalCapacity when capacity <= 0).
func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{capacity: capacity}
}

func (j *Journal) Append(_ context.Context, journey domain.Journey) error {
	emissions := make(map[string]float64, len(journey.Emissions))
	for mode, kg := range journey.Emissions {
		emissions[mode] = kg
	}
	journey.Emissions = emissions

	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.journeys) == j.capacity {
		copy(j.journeys, j.journeys[1:])
		j.journeys = j.journeys[:len(j.journeys)-1]
	}
	j.journeys = append(j.journeys, journey)
	return nil
}

func (j *Journal) List(_ context.Context) ([]domain.Journey, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]domain.Journey, len(j.journeys))
	copy(out, j.journeys)
	return out, nil
}
