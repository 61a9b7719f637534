// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lpf drives LEGO Power Functions (LPF) compatible infrared
// receivers by emitting IR pulse trains through a Linux kernel IR transmit
// device.
//
// LPF is LEGO's 38kHz infrared remote control protocol used by Power
// Functions train motors, servo motors, and lights. This package implements
// the protocol engine: encoding the four LPF command families into their
// 16-bit frames, framing those frames into pulse/space sequences, and the
// repeat/toggle/address bookkeeping the protocol requires across calls.
//
// Hardware
//
// A LEGO IR receiver is driven with an IR LED wired to a GPIO/PWM capable
// pin, decoded by the kernel's rc-core subsystem as a /dev/lirc* character
// device (see package lirchw). Most setups use a Raspberry Pi with
// dtoverlay=gpio-ir-tx in /boot/config.txt.
//
// Emulator
//
// When no hardware is present, or for tests, package lirctest provides a
// drop-in Sink that records the pulse trains it receives instead of
// emitting them.
//
// Controllers
//
// Four controller types match the four LPF command families:
// NewSpeedController (Single Output), NewDirectController (Combo Direct),
// NewComboPWMController (Combo PWM), and NewExtendedController (Extended).
// Each is a stateful front end over a Sink; see the per-type documentation
// for the command vocabulary each accepts.
//
// Reference
//
// LEGO Power Functions RC protocol v1.20, §3 (timing/repeat) and §4
// (frame layout per command family).
package lpf
