// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

// EncodeComboPWM builds the Combo PWM frame for speedRed/speedBlue on
// channel. See spec.md §4.5.3.
//
// Combo PWM's toggle bit is unused and MUST be zero per LPF §4.3 — unlike
// every other family, the caller never supplies a toggle bit here, and
// ComboPWMController never flips one.
func EncodeComboPWM(channel Channel, speedRed, speedBlue Pwm) (Frame16, error) {
	const op = "lpf: encode combo-pwm"
	if !channel.valid() {
		return 0, invalidArgument(op, "invalid channel %v", channel)
	}
	if err := validatePwm(op, speedRed); err != nil {
		return 0, err
	}
	if err := validatePwm(op, speedBlue); err != nil {
		return 0, err
	}
	n1 := 0b0100 | uint8(channel)
	n2 := encodePwm(speedBlue)
	n3 := encodePwm(speedRed)
	return MakeFrame(n1, n2, n3), nil
}
