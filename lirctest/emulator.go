// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lirctest provides a software fake of lpf.Sink for tests and for
// running lpf-based applications without LPF hardware attached.
//
// It plays the same role periph's devicestest package plays for
// devices.Display: a fake that implements the production interface and
// exposes its inputs through accessor methods (Calls, LastPulses,
// LastFreqHz, AllPulses) for a test to assert on.
package lirctest

import (
	"sync"

	"github.com/go-lpf/lpf"
)

// Sink is a fake lpf.Sink that records the most recent transmission
// instead of emitting it. It never fails.
type Sink struct {
	mu sync.Mutex

	calls       int
	lastFreqHz  uint32
	lastPulses  []uint32
	allRequests [][]uint32
}

// Transmit implements lpf.Sink. It always succeeds.
func (s *Sink) Transmit(freqHz uint32, pulses []uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastFreqHz = freqHz
	cp := make([]uint32, len(pulses))
	copy(cp, pulses)
	s.lastPulses = cp
	s.allRequests = append(s.allRequests, cp)
	return nil
}

// Calls returns the number of times Transmit has been called since
// construction or the last Reset.
func (s *Sink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastPulses returns the pulse buffer of the most recent Transmit call, or
// nil if Transmit has never been called.
func (s *Sink) LastPulses() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPulses
}

// LastFreqHz returns the carrier frequency of the most recent Transmit
// call.
func (s *Sink) LastFreqHz() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFreqHz
}

// AllPulses returns every pulse buffer passed to Transmit, in order.
func (s *Sink) AllPulses() [][]uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]uint32, len(s.allRequests))
	copy(out, s.allRequests)
	return out
}

// Reset clears all recorded state so one Sink can be reused across
// subtests without cross-contamination, mirroring how a fresh
// devicestest.Display is created per test in the pack.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = 0
	s.lastFreqHz = 0
	s.lastPulses = nil
	s.allRequests = nil
}

var _ lpf.Sink = &Sink{}
