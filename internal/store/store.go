// Package store owns the chore collection and mirrors it to a durable
// key-value slot after every mutation.
package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tgienger/chores/internal/log"
	"github.com/tgienger/chores/internal/models"
)

// SlotKey is the durable slot holding the serialized collection
const SlotKey = "choreTasks"

// Slot is a durable key-value store. A missing key reads as "".
// *db.DB satisfies it.
type Slot interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// Load reads the collection from the slot. Missing, corrupt or malformed
// values degrade to an empty collection; the failure is only logged.
func Load(slot Slot) []models.Task {
	raw, err := slot.GetSetting(SlotKey)
	if err != nil {
		log.WarningLog.Printf("%v", &PersistenceError{Op: "read", Err: err})
		return []models.Task{}
	}
	tasks, err := Decode(raw)
	if err != nil {
		log.WarningLog.Printf("ignoring unreadable %s: %v", SlotKey, err)
		return []models.Task{}
	}
	return tasks
}

// Save writes the whole collection to the slot
func Save(slot Slot, tasks []models.Task) error {
	raw, err := Encode(tasks)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := slot.SetSetting(SlotKey, raw); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// Store is the authoritative, insertion-ordered task collection.
// The mutex is held across each mutation and its save, so saves land in
// mutation order and always reflect the post-mutation state.
type Store struct {
	mu    sync.Mutex
	slot  Slot
	tasks []models.Task
	newID func() string
}

// New creates a store backed by slot and loads the current collection
func New(slot Slot) *Store {
	s := &Store{
		slot:  slot,
		newID: uuid.NewString,
	}
	s.Load()
	return s
}

// Load replaces the in-memory collection with the slot's contents
func (s *Store) Load() []models.Task {
	tasks := Load(s.slot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	log.DebugLog.Printf("loaded %d tasks", len(tasks))
	return cloneAll(s.tasks)
}

// Tasks returns a snapshot of the collection in insertion order
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.tasks)
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Get returns the task with id
func (s *Store) Get(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	return s.tasks[i].Clone(), nil
}

// Add validates d, appends a new incomplete task and saves
func (s *Store) Add(d models.Draft) (models.Task, error) {
	if err := validate(d); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Task{
		ID:          s.newID(),
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate.Clone(),
		Assignee:    d.Assignee,
	}
	s.tasks = append(s.tasks, t)
	s.save()

	log.InfoLog.Printf("added task %s for %s", t.ID, t.Assignee)
	return t.Clone(), nil
}

// Edit replaces every field of the task except its id and completion state
func (s *Store) Edit(id string, d models.Draft) (models.Task, error) {
	if err := validate(d); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}

	t := &s.tasks[i]
	t.Title = d.Title
	t.Description = d.Description
	t.DueDate = d.DueDate.Clone()
	t.Assignee = d.Assignee
	s.save()

	return t.Clone(), nil
}

// ToggleCompleted flips the completion state of the task
func (s *Store) ToggleCompleted(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	s.save()

	return s.tasks[i].Clone(), nil
}

// Remove deletes the task. Callers holding a selection on it must clear it.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.save()

	log.InfoLog.Printf("removed task %s", id)
	return nil
}

// save persists the collection. Must be called with mu held.
func (s *Store) save() {
	if err := Save(s.slot, s.tasks); err != nil {
		log.WarningLog.Printf("%v", err)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func validate(d models.Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if d.Assignee == "" {
		return &ValidationError{Field: "assignee", Reason: "is required"}
	}
	// The wire format only holds four-digit years
	if due := d.DueDate; due != nil && (due.IsZero() || due.Year() < 0 || due.Year() > 9999) {
		return &ValidationError{Field: "dueDate", Reason: "is not a valid date"}
	}
	return nil
}

func cloneAll(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
