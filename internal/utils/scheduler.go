// internal/utils/scheduler.go
package utils

import (
	"sort"
	"time"
)

// Clock даёт планировщику текущее время
type Clock interface {
	Now() time.Time
}

// SystemClock читает time.Now
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type deferred struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler хранит одноразовые вызовы, которые срабатывают в горутине вызывающего,
// когда Poll видит, что срок наступил. Здесь ничего не спит и не запускает горутины.
type Scheduler struct {
	clock   Clock
	seq     uint64
	pending []deferred
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// After ставит fn на первый Poll не раньше now+d
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, deferred{due: s.clock.Now().Add(d), seq: s.seq, fn: fn})
}

// Poll выполняет все наступившие вызовы, начиная с самого раннего, и возвращает их число.
// Вызовы, добавленные во время Poll, ждут следующего Poll.
func (s *Scheduler) Poll() int {
	if len(s.pending) == 0 {
		return 0
	}
	now := s.clock.Now()

	var due, keep []deferred
	for _, d := range s.pending {
		if !now.Before(d.due) {
			due = append(due, d)
		} else {
			keep = append(keep, d)
		}
	}
	s.pending = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, d := range due {
		d.fn()
	}
	return len(due)
}

// Cancel снимает все ожидающие вызовы
func (s *Scheduler) Cancel() {
	s.pending = nil
}

// Pending — сколько вызовов ждёт
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
