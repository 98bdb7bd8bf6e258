// Package store persists the task list as a single JSON file.
// The whole list is read at construction and rewritten wholesale on every
// mutation. There is no locking across processes: concurrent invocations
// race and the last writer wins.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/marcus/moodtask/internal/task"
)

const tasksFile = "tasks.json"

// Store owns the durable task record.
type Store struct {
	mu       sync.RWMutex
	filePath string
	tasks    []task.Task
}

// DefaultPath returns the default tasks file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "moodtask", tasksFile)
}

// New creates a Store backed by the given file, loading existing tasks.
// A missing file yields an empty list; an unreadable or corrupt file is
// an error, since no mutation is safe without a trustworthy task list.
func New(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = DefaultPath()
	}
	filePath = expandPath(filePath)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("creating tasks dir: %w", err)
	}

	s := &Store{
		filePath: filePath,
		tasks:    make([]task.Task, 0),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// load reads the tasks file into memory.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading tasks: %w", err)
	}

	var loaded []task.Task
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing tasks: %w", err)
	}

	for i := range loaded {
		loaded[i].Normalize()
	}

	s.tasks = loaded
	return nil
}

// Save writes the task list to disk atomically via a temp file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes to disk. Must be called with the lock held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tasks: %w", err)
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("writing tasks: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("renaming tasks file: %w", err)
	}

	return nil
}

// Tasks returns a copy of the task list in insertion order.
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.filePath
}

// Add appends a task and persists the list.
func (s *Store) Add(t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Normalize()
	s.tasks = append(s.tasks, t)
	return s.save()
}

// Find returns the first task matching title, if any.
func (s *Store) Find(title string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.Title == title {
			return t, true
		}
	}
	return task.Task{}, false
}

// UpdateStatus sets the status on the first task matching title and, for
// a Completed status, also flips the completed flag. Unknown titles are
// a silent no-op; the list is persisted either way.
func (s *Store) UpdateStatus(title, newStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].Title == title {
			if newStatus == task.StatusCompleted {
				s.tasks[i].Completed = true
			}
			s.tasks[i].Status = newStatus
			break
		}
	}
	return s.save()
}

// MarkCompleted sets the completed flag on the first task matching title.
// It does not touch the status field; that asymmetry with UpdateStatus is
// long-standing behavior callers rely on. Unknown titles are a silent
// no-op.
func (s *Store) MarkCompleted(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].Title == title {
			s.tasks[i].Completed = true
			break
		}
	}
	return s.save()
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
