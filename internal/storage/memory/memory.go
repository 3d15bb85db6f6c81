package memory

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"activityBoard/internal/models"

	"github.com/google/uuid"
)

// UntitledActivity replaces an empty title; cards are keyed by title.
const UntitledActivity = "Untitled"

var ErrActivityNotFound = errors.New("activity not found")

// Storage is the page-lifetime activity collection. Records keep insertion
// order. Lookups go through title and id indexes that point at the first
// record carrying the key.
type Storage struct {
	mu         sync.RWMutex
	activities []models.Activity
	byTitle    map[string]int
	byID       map[string]int
	newID      func() string
}

func New(seed []models.Activity) *Storage {
	s := &Storage{
		byTitle: make(map[string]int),
		byID:    make(map[string]int),
		newID:   uuid.NewString,
	}

	for _, a := range seed {
		s.append(a)
	}

	return s
}

// Seed returns the fixed sample set every page starts from.
func Seed() []models.Activity {
	return []models.Activity{
		{
			ID:           "1",
			Title:        "Kayaking Trip",
			Description:  "Join us for a scenic kayak on the lake.",
			Participants: []string{"Alice Johnson", "Sam Lee", "Ravi Patel"},
		},
		{
			ID:           "2",
			Title:        "Trail Run",
			Description:  "5k trail run through the hills.",
			Participants: []string{},
		},
	}
}

func (s *Storage) append(a models.Activity) {
	a.Participants = slices.Clone(a.Participants)
	if a.Participants == nil {
		a.Participants = []string{}
	}

	pos := len(s.activities)
	s.activities = append(s.activities, a)

	if _, ok := s.byTitle[a.Title]; !ok {
		s.byTitle[a.Title] = pos
	}
	if a.ID != "" {
		if _, ok := s.byID[a.ID]; !ok {
			s.byID[a.ID] = pos
		}
	}
}

// AddActivity appends a new record under a fresh id and returns a copy of it.
func (s *Storage) AddActivity(title, description string, participants []string) models.Activity {
	title = strings.TrimSpace(title)
	if title == "" {
		title = UntitledActivity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Activity{
		ID:           s.newID(),
		Title:        title,
		Description:  description,
		Participants: participants,
	}
	s.append(a)

	return clone(s.activities[len(s.activities)-1])
}

// AddParticipant appends name to the roster of the activity matching key.
// Repeated names are kept.
func (s *Storage) AddParticipant(key, name string) error {
	const op = "storage.memory.AddParticipant"

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.locate(key)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrActivityNotFound)
	}

	s.activities[pos].Participants = append(s.activities[pos].Participants, name)

	return nil
}

// RemoveParticipant drops the first occurrence of name. It reports whether
// anything was removed.
func (s *Storage) RemoveParticipant(key, name string) (bool, error) {
	const op = "storage.memory.RemoveParticipant"

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.locate(key)
	if !ok {
		return false, fmt.Errorf("%s: %w", op, ErrActivityNotFound)
	}

	participants := s.activities[pos].Participants
	ix := slices.Index(participants, name)
	if ix == -1 {
		return false, nil
	}
	s.activities[pos].Participants = slices.Delete(participants, ix, ix+1)

	return true, nil
}

// Lookup resolves key against titles and ids; the earliest record wins.
func (s *Storage) Lookup(key string) (models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.locate(key)
	if !ok {
		return models.Activity{}, false
	}

	return clone(s.activities[pos]), true
}

func (s *Storage) ByTitle(title string) (models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.byTitle[title]
	if !ok {
		return models.Activity{}, false
	}

	return clone(s.activities[pos]), true
}

func (s *Storage) ByID(id string) (models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.byID[id]
	if !ok {
		return models.Activity{}, false
	}

	return clone(s.activities[pos]), true
}

// Activities returns copies of all records in insertion order.
func (s *Storage) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, clone(a))
	}

	return out
}

func (s *Storage) Titles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a.Title)
	}

	return out
}

func (s *Storage) locate(key string) (int, bool) {
	t, okTitle := s.byTitle[key]
	i, okID := s.byID[key]

	switch {
	case okTitle && okID:
		return min(t, i), true
	case okTitle:
		return t, true
	case okID:
		return i, true
	default:
		return 0, false
	}
}

func clone(a models.Activity) models.Activity {
	a.Participants = slices.Clone(a.Participants)
	return a
}
