package memstore

import (
	"context"
	"sort"
	"sync"

	"reservatenis/internal/domain/court"
	"reservatenis/internal/infra"

	"github.com/google/uuid"
)

type CourtRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*court.Court
}

func NewCourtRepository() *CourtRepository {
	return &CourtRepository{
		byID: make(map[uuid.UUID]*court.Court),
	}
}

func (r *CourtRepository) Create(_ context.Context, c *court.Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Name() == c.Name() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "court name already exists", nil)
		}
	}

	r.byID[c.ID()] = c
	return nil
}

func (r *CourtRepository) FindByID(_ context.Context, id uuid.UUID) (*court.Court, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "court not found", nil)
	}
	return c, nil
}

func (r *CourtRepository) List(_ context.Context, includeInactive bool) ([]*court.Court, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courts := []*court.Court{}
	for _, c := range r.byID {
		if !includeInactive && !c.IsActive() {
			continue
		}
		courts = append(courts, c)
	}

	sort.Slice(courts, func(i, j int) bool {
		return courts[i].Name() < courts[j].Name()
	})
	return courts, nil
}

func (r *CourtRepository) Update(_ context.Context, c *court.Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "court not found", nil)
	}
	for _, existing := range r.byID {
		if existing.ID() != c.ID() && existing.Name() == c.Name() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "court name already exists", nil)
		}
	}
	r.byID[c.ID()] = c
	return nil
}
