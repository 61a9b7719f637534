// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lirchw implements lpf.Sink against a Linux LIRC character device
// (/dev/lirc0 and similar), as exposed by the kernel's rc-core IR transmit
// drivers (see https://www.kernel.org/doc/html/latest/userspace-api/media/rc/lirc-dev.html).
//
// Hardware
//
// A LEGO IR LED wired to a GPIO/PWM pin on a Raspberry Pi, configured via
// dtoverlay=gpio-ir-tx in /boot/config.txt, exposes itself as /dev/lircX.
// Open that path with Open and pass the result to any lpf controller
// constructor as its Sink.
//
// This package is Linux-only; Open returns a DeviceOpen error on every
// other platform. Use package lirctest instead for non-Linux development.
package lirchw
