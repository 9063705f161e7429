package model

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"principles/internal/deck"
)

// TickScheduler implements deck.Scheduler on the Bubble Tea event loop.
// AfterFunc queues a tea.Tick; the controller drains the queue after each
// message and calls Fire when the resulting ScheduledTaskMsg arrives, so the
// callback runs on the loop like every other update.
type TickScheduler struct {
	mu     sync.Mutex
	nextID uint64
	tasks  map[uint64]*tickTask
	queued []tea.Cmd
}

type tickTask struct {
	s  *TickScheduler
	id uint64
	f  func()
}

// NewTickScheduler returns an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{tasks: make(map[uint64]*tickTask)}
}

// AfterFunc implements deck.Scheduler.
func (s *TickScheduler) AfterFunc(d time.Duration, f func()) deck.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	t := &tickTask{s: s, id: id, f: f}
	s.tasks[id] = t
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return ScheduledTaskMsg{ID: id}
	}))
	return t
}

// Drain returns the ticks queued since the last call.
func (s *TickScheduler) Drain() []tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmds := s.queued
	s.queued = nil
	return cmds
}

// Fire runs task id if it is still pending and reports whether it ran.
func (s *TickScheduler) Fire(id uint64) bool {
	s.mu.Lock()
	t, ok := s.tasks[id]
	delete(s.tasks, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	t.f()
	return true
}

// Pending is the number of tasks that have neither fired nor been stopped.
func (s *TickScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop implements deck.Task.
func (t *tickTask) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.tasks[t.id]; !ok {
		return false
	}
	delete(t.s.tasks, t.id)
	return true
}
