// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

// SingleOutputCommand is either a Pwm value or a Discrete command, the two
// variants spec.md §4.5.1 accepts for a Single Output frame. Pwm and
// Discrete both implement it.
type SingleOutputCommand interface {
	isSingleOutputCommand()
}

func (Pwm) isSingleOutputCommand()      {}
func (Discrete) isSingleOutputCommand() {}

// EncodeSingleOutput builds the Single Output frame for cmd on channel and
// output, given the controller's current toggle bit. See spec.md §4.5.1.
func EncodeSingleOutput(channel Channel, output Output, cmd SingleOutputCommand, toggle uint8) (Frame16, error) {
	const op = "lpf: encode single-output"
	if !channel.valid() {
		return 0, invalidArgument(op, "invalid channel %v", channel)
	}
	if !output.valid() {
		return 0, invalidArgument(op, "invalid output %v", output)
	}

	var outputBit uint8
	if output == OutputBlue {
		outputBit = 1
	}

	var n2, n3 uint8
	switch c := cmd.(type) {
	case Pwm:
		if err := validatePwm(op, c); err != nil {
			return 0, err
		}
		n2 = outputBit << 3
		n3 = encodePwm(c)
	case Discrete:
		n2 = outputBit<<3 | 1<<2
		n3 = c.encode()
	default:
		return 0, invalidArgument(op, "unsupported command type %T", cmd)
	}

	n1 := toggle<<3 | uint8(channel)
	return MakeFrame(n1, n2, n3), nil
}
