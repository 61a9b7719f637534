// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "sync"

// transmitFrame serializes f into pulses and hands it to sink via the
// repeat scheduler. Shared by every controller's Send.
func transmitFrame(sink Sink, f Frame16, channel Channel) error {
	pulses := FramePulses(f)
	return sendRepeated(sink, pulses[:], frameDuration(f), channel)
}

// SpeedController is a stateful Single Output front end for one
// channel+output pair. Create one with NewSpeedController.
type SpeedController struct {
	mu      sync.Mutex
	sink    Sink
	channel Channel
	output  Output
	toggle  uint8
}

// NewSpeedController returns a controller that drives output on channel
// through sink. Its toggle bit starts at 0.
func NewSpeedController(sink Sink, channel Channel, output Output) (*SpeedController, error) {
	const op = "lpf: new speed controller"
	if sink == nil {
		return nil, invalidArgument(op, "sink is nil")
	}
	if !channel.valid() {
		return nil, invalidArgument(op, "invalid channel %v", channel)
	}
	if !output.valid() {
		return nil, invalidArgument(op, "invalid output %v", output)
	}
	return &SpeedController{sink: sink, channel: channel, output: output}, nil
}

// Send transmits cmd (a Pwm value or a Discrete command) 5 times and flips
// the toggle bit for the next Send, but only if the burst fully succeeds
// (spec.md §4.6, §5): a mid-burst Sink error leaves the toggle untouched
// so a caller-driven retry reproduces the same frame.
func (c *SpeedController) Send(cmd SingleOutputCommand) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, err := EncodeSingleOutput(c.channel, c.output, cmd, c.toggle)
	if err != nil {
		return err
	}
	if err := transmitFrame(c.sink, f, c.channel); err != nil {
		return err
	}
	c.toggle ^= 1
	return nil
}

// DirectController is a stateful Combo Direct front end for one channel.
// Create one with NewDirectController.
type DirectController struct {
	mu      sync.Mutex
	sink    Sink
	channel Channel
	toggle  uint8
}

// NewDirectController returns a controller that drives both outputs of
// channel in Combo Direct mode through sink.
func NewDirectController(sink Sink, channel Channel) (*DirectController, error) {
	const op = "lpf: new direct controller"
	if sink == nil {
		return nil, invalidArgument(op, "sink is nil")
	}
	if !channel.valid() {
		return nil, invalidArgument(op, "invalid channel %v", channel)
	}
	return &DirectController{sink: sink, channel: channel}, nil
}

// Send transmits the given red/blue states 5 times and flips the toggle
// bit for the next Send on success.
func (c *DirectController) Send(red, blue DirectState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, err := EncodeComboDirect(c.channel, red, blue, c.toggle)
	if err != nil {
		return err
	}
	if err := transmitFrame(c.sink, f, c.channel); err != nil {
		return err
	}
	c.toggle ^= 1
	return nil
}

// ComboPWMController is a stateless (apart from holding the sink/channel)
// Combo PWM front end for one channel. Create one with
// NewComboPWMController.
//
// Unlike the other three controller types it has no toggle bit: Combo PWM
// frames always carry toggle=0 per spec.md §4.5.3.
type ComboPWMController struct {
	mu      sync.Mutex
	sink    Sink
	channel Channel
}

// NewComboPWMController returns a controller that drives both outputs of
// channel in Combo PWM mode through sink.
func NewComboPWMController(sink Sink, channel Channel) (*ComboPWMController, error) {
	const op = "lpf: new combo-pwm controller"
	if sink == nil {
		return nil, invalidArgument(op, "sink is nil")
	}
	if !channel.valid() {
		return nil, invalidArgument(op, "invalid channel %v", channel)
	}
	return &ComboPWMController{sink: sink, channel: channel}, nil
}

// Send transmits the given red/blue speeds 5 times. There is no state to
// commit: every Send with the same arguments produces the same frame.
func (c *ComboPWMController) Send(speedRed, speedBlue Pwm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, err := EncodeComboPWM(c.channel, speedRed, speedBlue)
	if err != nil {
		return err
	}
	return transmitFrame(c.sink, f, c.channel)
}

// ExtendedController is a stateful Extended front end for one channel. It
// carries both a toggle bit and a toggleable address bit. Create one with
// NewExtendedController.
type ExtendedController struct {
	mu      sync.Mutex
	sink    Sink
	channel Channel
	toggle  uint8
	address uint8
}

// NewExtendedController returns a controller that drives channel in
// Extended mode through sink. Its toggle and address bits both start at 0.
func NewExtendedController(sink Sink, channel Channel) (*ExtendedController, error) {
	const op = "lpf: new extended controller"
	if sink == nil {
		return nil, invalidArgument(op, "sink is nil")
	}
	if !channel.valid() {
		return nil, invalidArgument(op, "invalid channel %v", channel)
	}
	return &ExtendedController{sink: sink, channel: channel}, nil
}

// Send transmits cmd 5 times and updates state on success per spec.md
// §4.5.4:
//
//   - AlignToggle forces the emitted frame's toggle bit to 1 and commits
//     that 1 directly, without the normal per-send flip.
//   - ToggleAddress emits under the address bit in effect before this
//     call, then flips the address bit so later, unrelated commands carry
//     the new address. Its own toggle bit still flips normally.
//   - every other command flips the toggle bit normally and leaves the
//     address bit untouched.
func (c *ExtendedController) Send(cmd ExtendedCommand) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	toggle := c.toggle
	if cmd == AlignToggle {
		toggle = 1
	}
	f, err := EncodeExtended(c.channel, cmd, toggle, c.address)
	if err != nil {
		return err
	}
	if err := transmitFrame(c.sink, f, c.channel); err != nil {
		return err
	}

	switch cmd {
	case AlignToggle:
		c.toggle = 1
	case ToggleAddress:
		c.toggle ^= 1
		c.address ^= 1
	default:
		c.toggle ^= 1
	}
	return nil
}
