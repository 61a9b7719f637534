// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "time"

// Carrier is the LPF IR carrier frequency in Hz, required by
// Sink.Transmit.
const Carrier uint32 = 38000

// LPF mark/space timings in microseconds, from spec.md §3 "Timing
// constants (LPF)".
const (
	startStopMarkUs  = 158
	startStopSpaceUs = 1026
	zeroMarkUs       = 158
	zeroSpaceUs      = 263
	oneMarkUs        = 158
	oneSpaceUs       = 553
)

// pulseCount is the fixed length of the pulse/space sequence FramePulses
// produces: START (2) + 16 bits (32) + STOP (2).
const pulseCount = 2 + 2*16 + 2

// FramePulses encodes f into an alternating mark/space sequence in
// microseconds: START, the 16 frame bits MSB first, then STOP. The result
// always has exactly 36 entries and starts with a mark (spec.md §4.2); odd
// indices are spaces.
func FramePulses(f Frame16) [pulseCount]uint32 {
	var p [pulseCount]uint32
	i := 0
	emit := func(mark, space uint32) {
		p[i] = mark
		p[i+1] = space
		i += 2
	}
	emit(startStopMarkUs, startStopSpaceUs)
	for bit := 15; bit >= 0; bit-- {
		if f&(1<<uint(bit)) != 0 {
			emit(oneMarkUs, oneSpaceUs)
		} else {
			emit(zeroMarkUs, zeroSpaceUs)
		}
	}
	emit(startStopMarkUs, startStopSpaceUs)
	return p
}

// frameDuration returns the wall-clock duration of one transmitted frame,
// the sum of every mark and space FramePulses would emit for f. The
// duration depends on the bit pattern, since a one bit (158+553µs) is
// longer than a zero bit (158+263µs), but is always bounded by spec.md §3's
// ~16ms ceiling.
func frameDuration(f Frame16) time.Duration {
	pulses := FramePulses(f)
	var total uint32
	for _, p := range pulses {
		total += p
	}
	return time.Duration(total) * time.Microsecond
}
