// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpf

import "testing"

func TestEncodeComboDirect(t *testing.T) {
	f, err := EncodeComboDirect(ChannelOne, DirectForward, DirectFloat, 0)
	if err != nil {
		t.Fatalf("EncodeComboDirect: %v", err)
	}
	if f.Nibble1() != 0b0000 || f.Nibble2() != 0b0001 || f.Nibble3() != 0b0001 || f.LRC() != 0b1111 {
		t.Fatalf("got n1=%04b n2=%04b n3=%04b lrc=%04b, want 0000 0001 0001 1111",
			f.Nibble1(), f.Nibble2(), f.Nibble3(), f.LRC())
	}
}

func TestEncodeComboDirectInvalidState(t *testing.T) {
	if _, err := EncodeComboDirect(ChannelOne, DirectState(9), DirectFloat, 0); err == nil {
		t.Fatal("expected an error for an invalid DirectState")
	}
}
