// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lpfsend sends a single LEGO Power Functions Single Output command and
// exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"

	"github.com/go-lpf/lpf"
	"github.com/go-lpf/lpf/lirchw"
	"github.com/go-lpf/lpf/lirctest"
)

func parseChannel(s string) (lpf.Channel, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 4 {
		return 0, fmt.Errorf("channel must be 1..4, got %q", s)
	}
	return lpf.Channel(n - 1), nil
}

func parseOutput(s string) (lpf.Output, error) {
	switch s {
	case "red":
		return lpf.OutputRed, nil
	case "blue":
		return lpf.OutputBlue, nil
	default:
		return 0, fmt.Errorf("output must be red or blue, got %q", s)
	}
}

func parseSpeed(s string) (lpf.Pwm, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < -7 || n > 7 {
		return 0, fmt.Errorf("speed must be -7..7, got %q", s)
	}
	return lpf.Pwm(n), nil
}

func mainImpl() error {
	verbose := flag.Bool("v", false, "verbose mode")
	device := flag.String("device", "", "LIRC device path, e.g. /dev/lirc0; omit to use the in-memory emulator")
	channel := flag.String("channel", "1", "output channel 1..4")
	output := flag.String("output", "red", "output port: red or blue")
	speed := flag.String("speed", "7", "PWM speed -7..7")
	flag.Parse()
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	ch, err := parseChannel(*channel)
	if err != nil {
		return err
	}
	out, err := parseOutput(*output)
	if err != nil {
		return err
	}
	spd, err := parseSpeed(*speed)
	if err != nil {
		return err
	}

	var sink lpf.Sink
	if *device == "" {
		log.Printf("no -device given, using in-memory emulator")
		sink = &lirctest.Sink{}
	} else {
		d, err := lirchw.Open(*device)
		if err != nil {
			return err
		}
		defer d.Close()
		sink = d
	}

	c, err := lpf.NewSpeedController(sink, ch, out)
	if err != nil {
		return err
	}
	log.Printf("sending channel=%s output=%s speed=%s", ch, out, spd)
	if err := c.Send(spd); err != nil {
		return err
	}
	if fake, ok := sink.(*lirctest.Sink); ok {
		fmt.Printf("emulator received %d frame(s), last pulse count %d\n", fake.Calls(), len(fake.LastPulses()))
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "lpfsend: %s.\n", err)
		os.Exit(1)
	}
}
