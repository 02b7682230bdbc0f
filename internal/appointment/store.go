package appointment

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the appointment collection. Every successful mutation is
// written through to the backing file and then published to all
// subscribers as the full collection, in mutation order. Persistence
// failures are logged and do not roll back in-memory state.
type Store struct {
	mu           sync.Mutex
	path         string
	appointments []Appointment
	listeners    []func([]Appointment)
}

// Open loads the store from path. A missing or malformed file yields an
// empty collection; it never fails.
func Open(path string) *Store {
	s := &Store{path: path}

	appts, err := load(path)
	if err != nil {
		log.Printf("appointment: loading %s: %v (starting empty)", path, err)
		appts = nil
	}
	s.appointments = appts
	return s
}

// Subscribe registers a listener for collection snapshots. The current
// collection is delivered immediately, then again after every
// mutation. Listeners run with the store lock held and must not call
// back into the store.
func (s *Store) Subscribe(fn func([]Appointment)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
	fn(s.snapshotLocked())
}

// Add assigns an id to the appointment and stores it.
func (s *Store) Add(a Appointment) Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	s.appointments = append(s.appointments, a)
	s.commitLocked()
	return a
}

// Update replaces the stored appointment with the same id. It reports
// false, leaving the collection untouched, when the id is unknown.
func (s *Store) Update(a Appointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(a.ID)
	if i < 0 {
		return false
	}
	s.appointments[i] = a
	s.commitLocked()
	return true
}

// Delete removes the appointment with the given id, reporting whether
// it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
	s.commitLocked()
	return true
}

// Move reschedules an appointment onto a new date, leaving its times
// alone.
func (s *Store) Move(id string, newDate time.Time) (Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Appointment{}, false
	}
	s.appointments[i].Date = newDate
	s.commitLocked()
	return s.appointments[i], true
}

// UpdateTime replaces an appointment's start and end times.
func (s *Store) UpdateTime(id, newStart, newEnd string) (Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Appointment{}, false
	}
	s.appointments[i].StartTime = newStart
	s.appointments[i].EndTime = newEnd
	s.commitLocked()
	return s.appointments[i], true
}

// Find returns the appointment with the given id.
func (s *Store) Find(id string) (Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Appointment{}, false
	}
	return s.appointments[i], true
}

// All returns a copy of the current collection.
func (s *Store) All() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ForDate returns the appointments on the given calendar day.
func (s *Store) ForDate(date time.Time) []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Appointment
	for _, a := range s.appointments {
		if sameDay(a.Date, date) {
			out = append(out, a)
		}
	}
	return out
}

// Reload re-reads the backing file and publishes the result. Called
// when the file changes on disk. A malformed file is ignored so a
// half-written save does not wipe the session.
func (s *Store) Reload() {
	appts, err := load(s.path)
	if err != nil {
		log.Printf("appointment: reloading %s: %v (keeping current)", s.path, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = appts
	s.publishLocked()
}

func (s *Store) indexLocked(id string) int {
	for i, a := range s.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// commitLocked persists then publishes. In-memory state stays
// authoritative when the write fails.
func (s *Store) commitLocked() {
	if err := save(s.path, s.appointments); err != nil {
		log.Printf("appointment: saving %s: %v", s.path, err)
	}
	s.publishLocked()
}

func (s *Store) publishLocked() {
	snapshot := s.snapshotLocked()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() []Appointment {
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}
