// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf_test

import (
	"errors"
	"testing"

	"github.com/go-lpf/lpf"
	"github.com/go-lpf/lpf/lirctest"
)

func TestSpeedControllerTogglesAndBursts(t *testing.T) {
	sink := &lirctest.Sink{}
	c, err := lpf.NewSpeedController(sink, lpf.ChannelOne, lpf.OutputRed)
	if err != nil {
		t.Fatalf("NewSpeedController: %v", err)
	}
	if err := c.Send(lpf.Pwm(5)); err != nil {
		t.Fatalf("first Send: %v", err)
	}
	if sink.Calls() != 5 {
		t.Fatalf("Calls() = %d, want 5", sink.Calls())
	}
	want0, err := lpf.EncodeSingleOutput(lpf.ChannelOne, lpf.OutputRed, lpf.Pwm(5), 0)
	if err != nil {
		t.Fatalf("EncodeSingleOutput: %v", err)
	}
	if !equalPulses(sink.LastPulses(), want0) {
		t.Fatalf("first Send did not emit %v (toggle=0)", want0)
	}

	if err := c.Send(lpf.Pwm(5)); err != nil {
		t.Fatalf("second Send: %v", err)
	}
	if sink.Calls() != 10 {
		t.Fatalf("Calls() = %d, want 10", sink.Calls())
	}
	want1, err := lpf.EncodeSingleOutput(lpf.ChannelOne, lpf.OutputRed, lpf.Pwm(5), 1)
	if err != nil {
		t.Fatalf("EncodeSingleOutput: %v", err)
	}
	if !equalPulses(sink.LastPulses(), want1) {
		t.Fatalf("second Send did not emit %v (toggle=1)", want1)
	}
}

// equalPulses reports whether got is the pulse train lpf.FramePulses
// produces for f.
func equalPulses(got []uint32, f lpf.Frame16) bool {
	want := lpf.FramePulses(f)
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

type failAfterNSink struct {
	n       int
	calls   int
	lastErr error
	pulses  []uint32
}

func (s *failAfterNSink) Transmit(freqHz uint32, pulses []uint32) error {
	s.calls++
	if s.calls == s.n {
		return errors.New("write failed")
	}
	s.pulses = append([]uint32(nil), pulses...)
	return nil
}

func TestSpeedControllerToggleNotCommittedOnFailure(t *testing.T) {
	sink := &failAfterNSink{n: 3}
	c, err := lpf.NewSpeedController(sink, lpf.ChannelOne, lpf.OutputRed)
	if err != nil {
		t.Fatalf("NewSpeedController: %v", err)
	}
	if err := c.Send(lpf.Pwm(5)); err == nil {
		t.Fatal("expected the burst to fail on its third transmit")
	}
	if sink.calls != 3 {
		t.Fatalf("calls = %d, want 3 (aborted at the failing transmit)", sink.calls)
	}

	// A retry after the failed burst must reproduce the exact same frame:
	// the toggle must not have advanced.
	if err := c.Send(lpf.Pwm(5)); err != nil {
		t.Fatalf("retry Send: %v", err)
	}
	if sink.calls != 8 {
		t.Fatalf("calls = %d, want 8 (3 from the failed burst, 5 from the retry)", sink.calls)
	}
	firstPulses := sink.pulses

	sink2 := &lirctest.Sink{}
	c3, err := lpf.NewSpeedController(sink2, lpf.ChannelOne, lpf.OutputRed)
	if err != nil {
		t.Fatalf("NewSpeedController: %v", err)
	}
	if err := c3.Send(lpf.Pwm(5)); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(firstPulses) != len(sink2.LastPulses()) {
		t.Fatalf("replayed frame has a different pulse length than a fresh controller's first send")
	}
	for i := range firstPulses {
		if firstPulses[i] != sink2.LastPulses()[i] {
			t.Fatalf("replayed frame differs at pulse %d: %d vs %d", i, firstPulses[i], sink2.LastPulses()[i])
		}
	}
}

func TestComboPWMControllerHasNoToggle(t *testing.T) {
	sink := &lirctest.Sink{}
	c, err := lpf.NewComboPWMController(sink, lpf.ChannelFour)
	if err != nil {
		t.Fatalf("NewComboPWMController: %v", err)
	}
	if err := c.Send(lpf.Pwm(5), lpf.Pwm(-3)); err != nil {
		t.Fatalf("first Send: %v", err)
	}
	first := sink.LastPulses()
	if err := c.Send(lpf.Pwm(5), lpf.Pwm(-3)); err != nil {
		t.Fatalf("second Send: %v", err)
	}
	second := sink.LastPulses()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Combo PWM frame changed between identical sends at pulse %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestExtendedControllerAlignToggle(t *testing.T) {
	sink := &lirctest.Sink{}
	c, err := lpf.NewExtendedController(sink, lpf.ChannelOne)
	if err != nil {
		t.Fatalf("NewExtendedController: %v", err)
	}
	if err := c.Send(lpf.AlignToggle); err != nil {
		t.Fatalf("AlignToggle Send: %v", err)
	}
	alignFrame, err := lpf.EncodeExtended(lpf.ChannelOne, lpf.AlignToggle, 1, 0)
	if err != nil {
		t.Fatalf("EncodeExtended: %v", err)
	}
	if !equalPulses(sink.LastPulses(), alignFrame) {
		t.Fatalf("AlignToggle did not emit %v (toggle=1)", alignFrame)
	}
	// After AlignToggle the normal per-send flip resumes, so two non-align
	// sends in a row must carry different toggle bits.
	if err := c.Send(lpf.BrakeThenFloatOnRedOutput); err != nil {
		t.Fatalf("Send: %v", err)
	}
	afterAlign := sink.LastPulses()
	if err := c.Send(lpf.BrakeThenFloatOnRedOutput); err != nil {
		t.Fatalf("Send: %v", err)
	}
	afterSecond := sink.LastPulses()
	same := true
	for i := range afterAlign {
		if afterAlign[i] != afterSecond[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("toggle bit did not change across two non-align Extended sends")
	}
}

func TestExtendedControllerToggleAddress(t *testing.T) {
	sink := &lirctest.Sink{}
	c, err := lpf.NewExtendedController(sink, lpf.ChannelOne)
	if err != nil {
		t.Fatalf("NewExtendedController: %v", err)
	}
	if err := c.Send(lpf.ToggleAddress); err != nil {
		t.Fatalf("ToggleAddress Send: %v", err)
	}
	beforeFlip := sink.LastPulses()
	// The ToggleAddress frame itself carries the old address (0).
	oldAddr, err := lpf.EncodeExtended(lpf.ChannelOne, lpf.ToggleAddress, 0, 0)
	if err != nil {
		t.Fatalf("EncodeExtended: %v", err)
	}
	if !equalPulses(beforeFlip, oldAddr) {
		t.Fatalf("ToggleAddress did not emit %v (address=0)", oldAddr)
	}
	if err := c.Send(lpf.BrakeThenFloatOnRedOutput); err != nil {
		t.Fatalf("Send: %v", err)
	}
	afterFlip := sink.LastPulses()
	// The next send carries the new address (1) and the flipped toggle (1).
	newAddr, err := lpf.EncodeExtended(lpf.ChannelOne, lpf.BrakeThenFloatOnRedOutput, 1, 1)
	if err != nil {
		t.Fatalf("EncodeExtended: %v", err)
	}
	if !equalPulses(afterFlip, newAddr) {
		t.Fatalf("send after ToggleAddress did not emit %v (address=1)", newAddr)
	}
	same := true
	for i := range beforeFlip {
		if beforeFlip[i] != afterFlip[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("address bit did not change after ToggleAddress")
	}
}

func TestControllerRejectsNilSink(t *testing.T) {
	if _, err := lpf.NewSpeedController(nil, lpf.ChannelOne, lpf.OutputRed); err == nil {
		t.Fatal("expected an error for a nil sink")
	}
}
