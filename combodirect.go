// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "fmt"

// DirectState is one output's state in a Combo Direct command.
type DirectState uint8

// Valid DirectState values. Named DirectXxx, not spec.md's bare Float/
// Forward/Backward/Brake, because Float and Brake already name Discrete
// opcodes in this package (same LPF concept, different frame family, and
// Go package-level identifiers must be unique).
const (
	DirectFloat DirectState = iota
	DirectForward
	DirectBackward
	DirectBrake
)

// String implements fmt.Stringer.
func (s DirectState) String() string {
	switch s {
	case DirectFloat:
		return "Float"
	case DirectForward:
		return "Forward"
	case DirectBackward:
		return "Backward"
	case DirectBrake:
		return "Brake"
	default:
		return fmt.Sprintf("DirectState(%d)", uint8(s))
	}
}

func (s DirectState) valid() bool {
	return s <= DirectBrake
}

// comboDirectMode is the fixed mode nibble selecting Combo Direct framing.
const comboDirectMode uint8 = 0b0001

// EncodeComboDirect builds the Combo Direct frame for the given output
// states on channel, given the controller's current toggle bit. See
// spec.md §4.5.2.
func EncodeComboDirect(channel Channel, red, blue DirectState, toggle uint8) (Frame16, error) {
	const op = "lpf: encode combo-direct"
	if !channel.valid() {
		return 0, invalidArgument(op, "invalid channel %v", channel)
	}
	if !red.valid() {
		return 0, invalidArgument(op, "invalid red state %v", red)
	}
	if !blue.valid() {
		return 0, invalidArgument(op, "invalid blue state %v", blue)
	}
	n1 := toggle<<3 | uint8(channel)
	n3 := uint8(blue)<<2 | uint8(red)
	return MakeFrame(n1, comboDirectMode, n3), nil
}
