// Package records keeps the in-memory weather record list consistent with
// server state under user-triggered edit/add/delete operations, using an
// optimistic-update-with-rollback pattern. The server is the source of
// truth; the list here is a cache reconciled on every mutation outcome.
package records

import (
	"context"
	"fmt"
	"sort"

	"github.com/MrRedFox1223/wdash/internal/model"
)

// API is the slice of the remote service the store needs.
type API interface {
	List(ctx context.Context) ([]model.WeatherRecord, error)
	Update(ctx context.Context, rec model.WeatherRecord) (model.WeatherRecord, error)
	Create(ctx context.Context, draft model.RecordDraft) (model.WeatherRecord, error)
	Delete(ctx context.Context, id int) error
}

// Notifier receives the transient outcome messages every operation surfaces.
// No failure is fatal; the store stays usable after any of them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Store holds the ordered record list plus the transient chart highlight.
// Mutations are admin-guarded: write calls from an anonymous session are
// silent no-ops (the guard is a capability check, not authorization — the
// server enforces that independently).
//
// Overlapping edits to the same record are not queued or coalesced; if two
// requests for one ID are somehow in flight together, the last response
// wins.
type Store struct {
	api     API
	isAdmin func() bool
	notify  Notifier

	list      []model.WeatherRecord
	loading   bool
	highlight *model.HighlightedPoint
}

// NewStore creates a record store. isAdmin is consulted before every write
// operation; notify receives all outcome messages.
func NewStore(api API, isAdmin func() bool, notify Notifier) *Store {
	return &Store{api: api, isAdmin: isAdmin, notify: notify}
}

// Records returns the current list. Callers must not mutate it.
func (s *Store) Records() []model.WeatherRecord {
	return s.list
}

// Loading reports whether a Load is in progress.
func (s *Store) Loading() bool {
	return s.loading
}

// Highlight returns the highlighted point, or nil when none is set.
func (s *Store) Highlight() *model.HighlightedPoint {
	return s.highlight
}

// Load fetches the full list from the server. On failure the list is reset
// to empty and an error notification is surfaced; the loading flag
// transitions true→false regardless of outcome.
func (s *Store) Load(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	records, err := s.api.List(ctx)
	if err != nil {
		s.list = []model.WeatherRecord{}
		s.notify.Error(fmt.Sprintf("could not load weather data: %v", err))
		return err
	}
	s.list = records
	return nil
}

// mutate runs one optimistic mutation: apply the local change, issue the
// remote call, revert the local change if the call fails. All three write
// operations flow through here so the capture/restore logic lives in one
// place.
func (s *Store) mutate(apply func(), call func() error, revert func()) error {
	apply()
	if err := call(); err != nil {
		revert()
		return err
	}
	return nil
}

// Find returns the record with the given ID, if present.
func (s *Store) Find(id int) (model.WeatherRecord, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.list[i], true
	}
	return model.WeatherRecord{}, false
}

// indexOf returns the position of the record with the given ID, or -1.
func (s *Store) indexOf(id int) int {
	for i, r := range s.list {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Update replaces the record matching rec.ID, optimistically. On failure
// the captured previous record is restored in place.
func (s *Store) Update(ctx context.Context, rec model.WeatherRecord) error {
	if !s.isAdmin() {
		return nil
	}
	if err := model.ValidateRecord(rec); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var previous *model.WeatherRecord
	if i := s.indexOf(rec.ID); i >= 0 {
		p := s.list[i]
		previous = &p
	}

	err := s.mutate(
		func() {
			if i := s.indexOf(rec.ID); i >= 0 {
				s.list[i] = rec
			}
		},
		func() error {
			_, err := s.api.Update(ctx, rec)
			return err
		},
		func() {
			if previous == nil {
				return
			}
			if i := s.indexOf(previous.ID); i >= 0 {
				s.list[i] = *previous
			}
		},
	)
	if err != nil {
		s.notify.Error(fmt.Sprintf("updating record %d failed: %v — the change was reverted", rec.ID, err))
		return err
	}
	s.notify.Success(fmt.Sprintf("record %d updated", rec.ID))
	return nil
}

// Add creates a record from the draft. Nothing is applied optimistically:
// the server assigns the ID, so the list only grows on success.
func (s *Store) Add(ctx context.Context, draft model.RecordDraft) error {
	if !s.isAdmin() {
		return nil
	}
	if err := model.ValidateDraft(draft); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var created model.WeatherRecord
	err := s.mutate(
		func() {},
		func() error {
			c, err := s.api.Create(ctx, draft)
			if err != nil {
				return err
			}
			created = c
			return nil
		},
		func() {},
	)
	if err != nil {
		s.notify.Error(fmt.Sprintf("adding record failed: %v", err))
		return err
	}
	s.list = append(s.list, created)
	s.notify.Success(fmt.Sprintf("record %d added", created.ID))
	return nil
}

// Delete removes the record with the given ID, optimistically. On failure
// the captured record is reinserted and the list re-sorted ascending by ID,
// keeping the rollback position deterministic rather than order-preserving.
func (s *Store) Delete(ctx context.Context, id int) error {
	if !s.isAdmin() {
		return nil
	}

	var captured *model.WeatherRecord
	err := s.mutate(
		func() {
			if i := s.indexOf(id); i >= 0 {
				c := s.list[i]
				captured = &c
				s.list = append(s.list[:i], s.list[i+1:]...)
			}
		},
		func() error {
			return s.api.Delete(ctx, id)
		},
		func() {
			if captured == nil {
				return
			}
			s.list = append(s.list, *captured)
			sort.Slice(s.list, func(i, j int) bool { return s.list[i].ID < s.list[j].ID })
		},
	)
	if err != nil {
		s.notify.Error(fmt.Sprintf("deleting record %d failed: %v — the record was restored", id, err))
		return err
	}
	s.notify.Success(fmt.Sprintf("record %d deleted", id))
	return nil
}

// ToggleHighlight selects the record with the given ID for chart emphasis.
// Selecting the already-highlighted record clears the highlight; an unknown
// ID clears it too.
func (s *Store) ToggleHighlight(id int) {
	if s.highlight != nil && s.highlight.ID == id {
		s.highlight = nil
		return
	}
	if i := s.indexOf(id); i >= 0 {
		r := s.list[i]
		s.highlight = &model.HighlightedPoint{ID: r.ID, CityName: r.CityName, Date: r.Date}
		return
	}
	s.highlight = nil
}
