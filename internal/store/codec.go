package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tgienger/chores/internal/models"
)

// Encode serializes tasks to the slot's JSON array shape.
// A nil collection encodes as [] so the slot never holds null.
func Encode(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a slot value. An empty value is an empty collection; a value
// that is not a JSON array of well-formed tasks is an error.
func Decode(raw string) ([]models.Task, error) {
	if strings.TrimSpace(raw) == "" {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		// "null"
		return []models.Task{}, nil
	}

	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		switch {
		case t.ID == "":
			return nil, fmt.Errorf("task %d: missing id", i)
		case seen[t.ID]:
			return nil, fmt.Errorf("task %d: duplicate id %s", i, t.ID)
		case strings.TrimSpace(t.Title) == "":
			return nil, fmt.Errorf("task %d: missing title", i)
		case t.Assignee == "":
			return nil, fmt.Errorf("task %d: missing assignee", i)
		}
		seen[t.ID] = true
	}
	return tasks, nil
}
