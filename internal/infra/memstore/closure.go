package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"reservatenis/internal/domain/closure"
	"reservatenis/internal/infra"

	"github.com/google/uuid"
)

type ClosureRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*closure.Closure
}

func NewClosureRepository() *ClosureRepository {
	return &ClosureRepository{
		byID: make(map[uuid.UUID]*closure.Closure),
	}
}

func (r *ClosureRepository) Create(_ context.Context, c *closure.Closure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[c.ID()] = c
	return nil
}

func (r *ClosureRepository) FindByID(_ context.Context, id uuid.UUID) (*closure.Closure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "closure not found", nil)
	}
	return c, nil
}

func (r *ClosureRepository) List(_ context.Context, from, to *time.Time) ([]*closure.Closure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	closures := []*closure.Closure{}
	for _, c := range r.byID {
		if from != nil && !c.EndTime().After(*from) {
			continue
		}
		if to != nil && !c.StartTime().Before(*to) {
			continue
		}
		closures = append(closures, c)
	}

	sortClosures(closures)
	return closures, nil
}

func (r *ClosureRepository) ListBlocking(_ context.Context, courtID uuid.UUID, from, to time.Time) ([]*closure.Closure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	closures := []*closure.Closure{}
	for _, c := range r.byID {
		if !c.AppliesTo(courtID) {
			continue
		}
		if c.Blocks(from, to) {
			closures = append(closures, c)
		}
	}

	sortClosures(closures)
	return closures, nil
}

func (r *ClosureRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "closure not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func sortClosures(closures []*closure.Closure) {
	sort.Slice(closures, func(i, j int) bool {
		return closures[i].StartTime().Before(closures[j].StartTime())
	})
}
