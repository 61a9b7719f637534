// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "fmt"

// ErrorKind categorizes the ways a Sink or a controller can fail.
type ErrorKind int

// The error kinds from spec.md §7. This is a taxonomy, not a type per kind:
// callers branch on Kind(), not on distinct error types.
const (
	// InvalidArgument means a PWM value, channel index, or command/variant
	// combination was rejected before any I/O was attempted.
	InvalidArgument ErrorKind = iota
	// DeviceOpen means the /dev/lircX device could not be acquired.
	DeviceOpen
	// CarrierUnsupported means the kernel rejected the 38kHz carrier.
	CarrierUnsupported
	// Io means a write to the device failed or was short.
	Io
	// EmulatorOnly means a hardware-only operation was attempted against an
	// emulator-only build or Sink.
	EmulatorOnly
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case DeviceOpen:
		return "DeviceOpen"
	case CarrierUnsupported:
		return "CarrierUnsupported"
	case Io:
		return "Io"
	case EmulatorOnly:
		return "EmulatorOnly"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by the lpf encoders and constructors and
// by lirchw.Device. A controller's Send returns an error from its Sink
// unchanged, so with other Sink implementations it need not be an *Error. Op
// names the failing operation, e.g. "lpf: encode single-output" or
// "lirchw: set carrier". Err, if non-nil, is the underlying cause and is
// reachable through Unwrap.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap allows errors.Is/errors.As to reach the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func invalidArgument(op, format string, args ...interface{}) *Error {
	return newError(InvalidArgument, op, fmt.Errorf(format, args...))
}
