// Copyright 2026 Rachel Finch. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"reflect"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in      string
		hexMode bool
		out     int64
		ok      bool
	}{
		{"100", false, 100, true},
		{"100", true, 0x100, true},
		{"$8000", false, 0x8000, true},
		{"0xff", false, 0xff, true},
		{"0XFF", true, 0xff, true},
		{"zz", false, 0, false},
	}

	for _, tc := range cases {
		v, err := parseNumber(tc.in, tc.hexMode)
		if tc.ok != (err == nil) {
			t.Errorf("parseNumber(%q, %v) error mismatch: %v", tc.in, tc.hexMode, err)
			continue
		}
		if tc.ok && v != tc.out {
			t.Errorf("parseNumber(%q, %v) = %d, want %d", tc.in, tc.hexMode, v, tc.out)
		}
	}
}

func TestStringToBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE"} {
		if v, err := stringToBool(s); err != nil || !v {
			t.Errorf("stringToBool(%q) = %v, %v", s, v, err)
		}
	}
	for _, s := range []string{"0", "false"} {
		if v, err := stringToBool(s); err != nil || v {
			t.Errorf("stringToBool(%q) = %v, %v", s, v, err)
		}
	}
	if _, err := stringToBool("yep"); err == nil {
		t.Error("stringToBool accepted an invalid value")
	}
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(&out)

	// Reading the input port with no keys waiting returns 0.
	if v := c.ReadByte(consolePortIn); v != 0 {
		t.Errorf("empty input port read = $%02X, want $00", v)
	}

	c.Push('h')
	c.Push('i')
	if v := c.ReadByte(consolePortIn); v != 'h' {
		t.Errorf("input port read = $%02X, want 'h'", v)
	}
	if v := c.ReadByte(consolePortIn); v != 'i' {
		t.Errorf("input port read = $%02X, want 'i'", v)
	}

	c.WriteByte(consolePortOut, 'o')
	c.WriteByte(consolePortOut, 'k')
	if got := out.String(); got != "ok" {
		t.Errorf("output port produced %q, want %q", got, "ok")
	}
}

func TestSettings(t *testing.T) {
	s := newSettings()

	if k := s.Kind("loadaddress"); k != reflect.Uint16 {
		t.Errorf("Kind(loadaddress) = %v, want uint16", k)
	}
	if k := s.Kind("nosuchsetting"); k != reflect.Invalid {
		t.Errorf("Kind(nosuchsetting) = %v, want invalid", k)
	}

	if err := s.Set("loadaddress", int64(0xc000)); err != nil {
		t.Fatalf("Set(loadaddress) failed: %v", err)
	}
	if s.LoadAddress != 0xc000 {
		t.Errorf("LoadAddress = $%04X, want $C000", s.LoadAddress)
	}

	if err := s.Set("hexmode", true); err != nil {
		t.Fatalf("Set(hexmode) failed: %v", err)
	}
	if !s.HexMode {
		t.Error("HexMode not updated")
	}
}
