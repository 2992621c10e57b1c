// Package store is the single source of truth for calendar events. Every
// mutation rewrites one complete JSON snapshot on disk, so the persisted
// state always equals the in-memory state once a mutating call returns.
package store

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/agenda/pkg/event"
)

// snapshotKey is the single diskv key holding the serialized event array.
const snapshotKey = "events.json"

// Store owns the in-memory event list and mirrors it to the snapshot after
// every mutation. Mutations either fully apply and persist or leave prior
// state untouched. All calls run to completion on the caller's goroutine;
// there is no parallel mutation path.
type Store struct {
	d        *diskv.Diskv
	basePath string
	events   []*event.Event // insertion order, preserved by every operation
}

// Load opens (or creates) the store at the configured path. A corrupt
// snapshot is logged and treated as an empty store rather than failing
// startup.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	s := &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
	s.loadSnapshot()
	return s, nil
}

// Reload rereads the snapshot from disk, discarding in-memory state. Used
// by watch mode to pick up writes from another process.
func (s *Store) Reload() {
	s.loadSnapshot()
}

func (s *Store) loadSnapshot() {
	s.events = nil

	data, err := s.d.Read(snapshotKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: read snapshot: %v\n", err)
		}
		return
	}
	var loaded []*event.Event
	if err := json.Unmarshal(data, &loaded); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt snapshot, starting empty: %v\n", err)
		return
	}
	seen := make(map[string]bool, len(loaded))
	for _, e := range loaded {
		if e == nil {
			continue
		}
		e.Normalize()
		if e.ID == "" || seen[e.ID] {
			e.ID = s.newID(e)
		}
		seen[e.ID] = true
		s.events = append(s.events, e)
	}
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.events)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.d.Write(snapshotKey, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// Create validates the draft, assigns a fresh id, inserts, and persists.
func (s *Store) Create(d event.Draft) (*event.Event, error) {
	e, err := d.Event()
	if err != nil {
		return nil, &ValidationError{Err: err}
	}
	e.ID = s.newID(e)

	s.events = append(s.events, e)
	if err := s.persist(); err != nil {
		s.events = s.events[:len(s.events)-1]
		return nil, err
	}
	return e.Clone(), nil
}

// Fields carries a partial update for Edit. Nil members keep the event's
// prior value; ClearEnd removes the end time entirely.
type Fields struct {
	Title    *string
	Start    *time.Time
	End      *time.Time
	ClearEnd bool
	Location *string
	Priority *event.Priority
}

// Edit merges fields into the event with the given id and persists. The
// merged result must still validate or nothing is applied.
func (s *Store) Edit(id string, f Fields) (*event.Event, error) {
	i := s.index(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}

	updated := s.events[i].Clone()
	if f.Title != nil {
		updated.Title = *f.Title
	}
	if f.Start != nil {
		updated.Start = &event.Timestamp{Time: *f.Start}
	}
	switch {
	case f.ClearEnd:
		updated.End = nil
	case f.End != nil:
		updated.End = &event.Timestamp{Time: *f.End}
	}
	if f.Location != nil {
		updated.Location = *f.Location
	}
	if f.Priority != nil {
		updated.Priority = event.ParsePriority(string(*f.Priority))
	}
	updated.Normalize()
	if err := updated.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	prior := s.events[i]
	s.events[i] = updated
	if err := s.persist(); err != nil {
		s.events[i] = prior
		return nil, err
	}
	return updated.Clone(), nil
}

// Delete removes the event with the given id and persists.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	prior := s.events
	s.events = append(append([]*event.Event{}, prior[:i]...), prior[i+1:]...)
	if err := s.persist(); err != nil {
		s.events = prior
		return err
	}
	return nil
}

// SetCompleted sets only the completed flag and persists.
func (s *Store) SetCompleted(id string, value bool) (*event.Event, error) {
	i := s.index(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	updated := s.events[i].Clone()
	updated.Completed = value

	prior := s.events[i]
	s.events[i] = updated
	if err := s.persist(); err != nil {
		s.events[i] = prior
		return nil, err
	}
	return updated.Clone(), nil
}

// SkippedRecord names one import record the store refused, so callers can
// surface exactly what was dropped.
type SkippedRecord struct {
	Index  int
	Reason string
}

// ReplaceReport summarizes a ReplaceAll.
type ReplaceReport struct {
	Installed int
	Skipped   []SkippedRecord
}

// ReplaceAll atomically discards the current store and installs the given
// events. Policy for mixed batches: invalid records are skipped, never
// installed as-is, and every skip is reported with its index and reason.
// The snapshot is written once at the end; on write failure the prior state
// is restored and nothing is reported installed.
func (s *Store) ReplaceAll(events []*event.Event) (*ReplaceReport, error) {
	report := &ReplaceReport{}

	incoming := make([]*event.Event, 0, len(events))
	seen := make(map[string]bool, len(events))
	for i, e := range events {
		if e == nil {
			report.Skipped = append(report.Skipped, SkippedRecord{Index: i, Reason: "empty record"})
			continue
		}
		c := e.Clone()
		c.Normalize()
		if err := c.Validate(); err != nil {
			report.Skipped = append(report.Skipped, SkippedRecord{Index: i, Reason: err.Error()})
			continue
		}
		if c.ID == "" || seen[c.ID] {
			c.ID = s.newID(c)
		}
		seen[c.ID] = true
		incoming = append(incoming, c)
	}

	prior := s.events
	s.events = incoming
	if err := s.persist(); err != nil {
		s.events = prior
		return nil, err
	}
	report.Installed = len(incoming)
	return report, nil
}

// Clear empties the store and erases the persisted snapshot.
func (s *Store) Clear() error {
	prior := s.events
	s.events = nil
	if err := s.d.Erase(snapshotKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.events = prior
		return &PersistenceError{Op: "erase", Err: err}
	}
	return nil
}

// List returns copies of all events in insertion order. Reads never touch
// the snapshot.
func (s *Store) List() []*event.Event {
	all := make([]*event.Event, 0, len(s.events))
	for _, e := range s.events {
		all = append(all, e.Clone())
	}
	return all
}

// GetByID returns a copy of the event with the given id.
func (s *Store) GetByID(id string) (*event.Event, error) {
	i := s.index(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return s.events[i].Clone(), nil
}

// Len reports how many events the store holds.
func (s *Store) Len() int {
	return len(s.events)
}

// SnapshotSize reports the byte size of the persisted snapshot, zero when
// none exists.
func (s *Store) SnapshotSize() int64 {
	info, err := os.Stat(filepath.Join(s.basePath, snapshotKey))
	if err != nil {
		return 0
	}
	return info.Size()
}

func (s *Store) index(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// newID hashes the event plus a nanosecond nonce. Ids are never reused;
// a collision with a live id rehashes.
func (s *Store) newID(e *event.Event) string {
	nonce := time.Now().UnixNano()
	for {
		b, _ := json.Marshal(e)
		b = strconv.AppendInt(b, nonce, 10)
		sum := md5.Sum(b)
		id := fmt.Sprintf("%x", sum[:8])
		if s.index(id) < 0 {
			return id
		}
		nonce++
	}
}
