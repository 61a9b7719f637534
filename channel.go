// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "fmt"

// Channel is one of the four LPF receiver channels selectable by the
// physical switch on the IR receiver.
type Channel uint8

// Valid LPF channels, encoded as the 2-bit channel field of nibble1.
const (
	ChannelOne Channel = iota
	ChannelTwo
	ChannelThree
	ChannelFour
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	switch c {
	case ChannelOne:
		return "Channel1"
	case ChannelTwo:
		return "Channel2"
	case ChannelThree:
		return "Channel3"
	case ChannelFour:
		return "Channel4"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

func (c Channel) valid() bool {
	return c <= ChannelFour
}

// Output is one of the two receiver outputs (Red or Blue) on a channel.
type Output uint8

// Valid LPF outputs.
const (
	OutputRed Output = iota
	OutputBlue
)

// String implements fmt.Stringer.
func (o Output) String() string {
	switch o {
	case OutputRed:
		return "Red"
	case OutputBlue:
		return "Blue"
	default:
		return fmt.Sprintf("Output(%d)", uint8(o))
	}
}

func (o Output) valid() bool {
	return o == OutputRed || o == OutputBlue
}
