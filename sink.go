// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

// Sink is the capability a controller needs to emit IR: turn a pulse/space
// sequence into radiated (or recorded) infrared at a given carrier.
//
// Transmit is blocking: on return, the kernel (or the fake, for lirctest)
// has accepted the buffer. Implementations are package lirchw (hardware,
// via a /dev/lircX character device) and package lirctest (software fake
// for tests and non-Linux development).
type Sink interface {
	// Transmit emits pulses, an alternating mark/space sequence in
	// microseconds starting with a mark, at the given carrier frequency in
	// Hz. It returns once the buffer has been accepted.
	Transmit(freqHz uint32, pulses []uint32) error
}
