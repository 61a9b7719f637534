// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "time"

// repeatCount is the number of times every LPF command family transmits
// its frame, per LPF §3.4. All four command families use the same value;
// spec.md §4.4 exposes it as a constant rather than a per-encoder choice.
const repeatCount = 5

// maxMessageLength is the LPF §3.1 16ms super-frame slot that bounds how
// tightly frames can be packed.
const maxMessageLength = 16 * time.Millisecond

// slotForChannel returns the gap to wait after transmitting iteration i of
// a burst (0-based) on channel, before sending the next frame. See
// spec.md §3 "Repeat timing" and §9's open question: the formula for
// iteration >= repeatCount is carried from the spec text as written and is
// unreachable with the fixed repeatCount of 5, but is kept so a caller
// that raises repeatCount (or a future protocol variant) gets the
// documented channel-dependent slot rather than silently reusing the
// short-burst gap forever.
func slotForChannel(channel Channel, i int, frameLen time.Duration) time.Duration {
	if i < repeatCount {
		gap := 5 * frameLen
		if maxMessageLength > gap {
			gap = maxMessageLength
		}
		return gap - frameLen
	}
	return time.Duration(int(channel)+1) * maxMessageLength
}

// sendRepeated transmits pulses repeatCount times on sink, pacing the
// inter-frame gap per slotForChannel, and aborts immediately on the first
// Sink error without retrying (spec.md §4.4, §7: retries could desync the
// receiver's own toggle tracking).
func sendRepeated(sink Sink, pulses []uint32, frameLen time.Duration, channel Channel) error {
	for i := 0; i < repeatCount; i++ {
		if err := sink.Transmit(Carrier, pulses); err != nil {
			return err
		}
		if i != repeatCount-1 {
			time.Sleep(slotForChannel(channel, i, frameLen))
		}
	}
	return nil
}
