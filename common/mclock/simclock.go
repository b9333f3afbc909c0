// Copyright 2019 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package mclock

import (
	"container/heap"
	"sync"
	"time"
)

// Simulated implements Clock for testing. It simulates a clock of unknown
// speed: there is no automatic advancement between events. Instead, time
// advances when Run is called.
type Simulated struct {
	mu     sync.RWMutex
	now    AbsTime
	scheduled simTimerHeap
	cond   *sync.Cond
}

// simTimer implements ChanTimer on the virtual clock.
type simTimer struct {
	do func()
	at AbsTime
	ch chan AbsTime
	s  *Simulated
}

func (s *Simulated) init() {
	if s.cond == nil {
		s.cond = sync.NewCond(&s.mu)
	}
}

// Run moves the clock by the given duration, executing all timers before
// that duration in simulated time order.
func (s *Simulated) Run(d time.Duration) {
	s.mu.Lock()
	s.init()
	end := s.now + AbsTime(d)
	var do []func()
	for len(s.scheduled) > 0 && s.scheduled[0].at <= end {
		ev := heap.Pop(&s.scheduled).(*simTimer)
		do = append(do, ev.do)
	}
	s.now = end
	s.mu.Unlock()

	for _, f := range do {
		f()
	}
}

// ActiveTimers returns the number of timers that haven't fired yet.
func (s *Simulated) ActiveTimers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scheduled)
}

// WaitForTimers blocks until the clock has at least n scheduled timers.
func (s *Simulated) WaitForTimers(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
	for len(s.scheduled) < n {
		s.cond.Wait()
	}
}

// Now returns the current virtual time.
func (s *Simulated) Now() AbsTime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Sleep blocks until the clock has advanced by d.
func (s *Simulated) Sleep(d time.Duration) {
	<-s.After(d)
}

// NewTimer creates a timer which fires when the clock has advanced by d.
func (s *Simulated) NewTimer(d time.Duration) ChanTimer {
	ch := make(chan AbsTime, 1)
	t := s.schedule(d, func() { ch <- s.Now() })
	t.ch = ch
	return t
}

// After returns a channel equivalent to NewTimer(d).C().
func (s *Simulated) After(d time.Duration) <-chan AbsTime {
	return s.NewTimer(d).C()
}

// AfterFunc schedules f to run after the clock has advanced by d.
func (s *Simulated) AfterFunc(d time.Duration, f func()) Timer {
	return s.schedule(d, f)
}

func (s *Simulated) schedule(d time.Duration, f func()) *simTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
	at := s.now + AbsTime(d)
	t := &simTimer{do: f, at: at, s: s}
	heap.Push(&s.scheduled, t)
	s.cond.Broadcast()
	return t
}

func (t *simTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	index := t.s.scheduled.find(t)
	if index < 0 {
		return false
	}
	heap.Remove(&t.s.scheduled, index)
	return true
}

func (t *simTimer) Reset(d time.Duration) {
	t.s.mu.Lock()
	t.at = t.s.now + AbsTime(d)
	index := t.s.scheduled.find(t)
	t.s.mu.Unlock()

	if index < 0 {
		t.s.schedule(d, t.do)
	} else {
		t.s.mu.Lock()
		heap.Fix(&t.s.scheduled, index)
		t.s.mu.Unlock()
	}
}

func (t *simTimer) C() <-chan AbsTime {
	return t.ch
}

type simTimerHeap []*simTimer

func (h simTimerHeap) Len() int            { return len(h) }
func (h simTimerHeap) Less(i, j int) bool  { return h[i].at < h[j].at }
func (h simTimerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *simTimerHeap) Push(x interface{}) { *h = append(*h, x.(*simTimer)) }
func (h *simTimerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func (h simTimerHeap) find(t *simTimer) int {
	for i, e := range h {
		if e == t {
			return i
		}
	}
	return -1
}
