// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "fmt"

// ExtendedCommand is an Extended-family opcode. See spec.md §4.5.4.
type ExtendedCommand uint8

// Valid ExtendedCommand opcodes, from LEGO Power Functions RC v1.20 §4.1.
const (
	BrakeThenFloatOnRedOutput        ExtendedCommand = 0x0
	IncrementSpeedOnRedOutput        ExtendedCommand = 0x1
	DecrementSpeedOnRedOutput        ExtendedCommand = 0x2
	ToggleForwardOrFloatOnBlueOutput ExtendedCommand = 0x4
	ToggleAddress                    ExtendedCommand = 0x6
	AlignToggle                      ExtendedCommand = 0x7
)

// String implements fmt.Stringer.
func (c ExtendedCommand) String() string {
	switch c {
	case BrakeThenFloatOnRedOutput:
		return "BrakeThenFloatOnRedOutput"
	case IncrementSpeedOnRedOutput:
		return "IncrementSpeedOnRedOutput"
	case DecrementSpeedOnRedOutput:
		return "DecrementSpeedOnRedOutput"
	case ToggleForwardOrFloatOnBlueOutput:
		return "ToggleForwardOrFloatOnBlueOutput"
	case ToggleAddress:
		return "ToggleAddress"
	case AlignToggle:
		return "AlignToggle"
	default:
		return fmt.Sprintf("ExtendedCommand(%#x)", uint8(c))
	}
}

func (c ExtendedCommand) valid() bool {
	switch c {
	case BrakeThenFloatOnRedOutput, IncrementSpeedOnRedOutput, DecrementSpeedOnRedOutput,
		ToggleForwardOrFloatOnBlueOutput, ToggleAddress, AlignToggle:
		return true
	default:
		return false
	}
}

// extendedMode is the fixed mode nibble selecting Extended framing.
const extendedMode uint8 = 0b0000

// EncodeExtended builds the Extended frame for cmd on channel, given the
// toggle and address bits the caller wants burned into this particular
// frame. It is a pure function: ExtendedController decides what toggle and
// address to pass in, and how to update its own state afterward, per the
// state-machine rules in spec.md §4.5.4.
//
// spec.md §4.5.4 says nibble1 "includes the current address bit" while
// also pinning escape to 0 for Extended; this implementation resolves
// that by carrying address in the bit position escape occupies for every
// other family (nibble1 = toggle | address | channel), since Extended
// never uses escape for anything else. With address=0 this nibble1 is
// indistinguishable from a plain escape=0 frame, matching every worked
// example in spec.md §8 that doesn't exercise ToggleAddress.
func EncodeExtended(channel Channel, cmd ExtendedCommand, toggle, address uint8) (Frame16, error) {
	const op = "lpf: encode extended"
	if !channel.valid() {
		return 0, invalidArgument(op, "invalid channel %v", channel)
	}
	if !cmd.valid() {
		return 0, invalidArgument(op, "invalid extended command %v", cmd)
	}
	n1 := toggle<<3 | address<<2 | uint8(channel)
	return MakeFrame(n1, extendedMode, uint8(cmd)), nil
}
