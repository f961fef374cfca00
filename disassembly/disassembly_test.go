// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package disassembly_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

type mockMem [0x10000]uint8

func (m *mockMem) Peek(address uint16) uint8 {
	return m[address]
}

func (m *mockMem) load(address uint16, data ...uint8) {
	copy(m[address:], data)
}

// the disassembly column of a trace line, including the marker for
// undocumented instructions
func instruction(line string) string {
	return strings.TrimSpace(line[15:47])
}

func TestTraceLine(t *testing.T) {
	var mem mockMem
	mem.load(0xc000, 0x4c, 0xf5, 0xc5)

	st := disassembly.State{PC: 0xc000, P: 0x24, SP: 0xfd, Dot: 21, Cycles: 7}
	test.ExpectEquality(t, disassembly.TraceLine(&mem, st),
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7")

	st = disassembly.State{PC: 0xc5f5, A: 0x01, X: 0x02, Y: 0x03, P: 0xe5, SP: 0xfb, Scanline: 261, Dot: 340, Cycles: 123456}
	mem.load(0xc5f5, 0x86, 0x00)
	test.ExpectEquality(t, disassembly.TraceLine(&mem, st),
		"C5F5  86 00     STX $00 = 00                    A:01 X:02 Y:03 P:E5 SP:FB PPU:261,340 CYC:123456")
}

func TestAnnotation(t *testing.T) {
	var mem mockMem

	// zero page values used by the indirect modes
	mem.load(0x0082, 0x00, 0x02)
	mem.load(0x0089, 0x00, 0x03)
	mem.load(0x00ff, 0x34)
	mem.load(0x0000, 0x56)
	mem.load(0x0200, 0x5a)
	mem.load(0x0310, 0x89)
	mem.load(0x1234, 0x77)

	// the JMP indirect pointer at the end of a page
	mem.load(0x02ff, 0x00)
	mem.load(0x0300, 0x04)
	mem.load(0x0200, 0xa9)

	tests := []struct {
		code     []uint8
		expected string
	}{
		{[]uint8{0x18}, "CLC"},
		{[]uint8{0x4a}, "LSR A"},
		{[]uint8{0xa9, 0x01}, "LDA #$01"},
		{[]uint8{0x04, 0x89}, "*NOP $89 = 00"},
		{[]uint8{0xb5, 0x80}, "LDA $80,X @ 82 = 00"},
		{[]uint8{0xb6, 0xf0}, "LDX $F0,Y @ 00 = 56"},
		{[]uint8{0x20, 0x00, 0x80}, "JSR $8000"},
		{[]uint8{0xad, 0x34, 0x12}, "LDA $1234 = 77"},
		{[]uint8{0xbd, 0x00, 0x02}, "LDA $0200,X @ 0202 = 00"},
		{[]uint8{0x99, 0x00, 0x03}, "STA $0300,Y @ 0310 = 89"},
		{[]uint8{0x6c, 0xff, 0x02}, "JMP ($02FF) = A900"},
		{[]uint8{0xa1, 0x80}, "LDA ($80,X) @ 82 = 0200 = A9"},
		{[]uint8{0xa1, 0xfd}, "LDA ($FD,X) @ FF = 5634 = 00"},
		{[]uint8{0xb1, 0x89}, "LDA ($89),Y = 0300 @ 0310 = 89"},
		{[]uint8{0xe7, 0x10}, "*ISB $10 = 00"},
		{[]uint8{0xeb, 0x10}, "*SBC #$10"},
		{[]uint8{0xb0, 0x04}, "BCS $C006"},
		{[]uint8{0xd0, 0xfe}, "BNE $C000"},
	}

	for _, tt := range tests {
		mem.load(0xc000, tt.code...)
		st := disassembly.State{PC: 0xc000, X: 0x02, Y: 0x10}
		test.ExpectEquality(t, instruction(disassembly.TraceLine(&mem, st)), tt.expected)
	}
}

func TestListing(t *testing.T) {
	var mem mockMem
	mem.load(0x8000, 0xa9, 0x00, 0x8d, 0x00, 0x20, 0xa7, 0x10)

	w := &test.CompareWriter{}
	next, err := disassembly.Listing(w, &mem, 0x8000, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, next, uint16(0x8007))
	test.ExpectSuccess(t, w.Compare(
		"8000  A9 00     LDA #$00\n"+
			"8002  8D 00 20  STA $2000\n"+
			"8005  A7 10     LAX $10 (undocumented)\n"))
}

// TestNestest compares the execution of nestest.nes with the known good log.
// The ROM and log are not distributed with the source and the test is skipped
// if they are not present in the testdata directory.
func TestNestest(t *testing.T) {
	romPath := filepath.Join("testdata", "nestest.nes")
	logPath := filepath.Join("testdata", "nestest.log")
	if _, err := os.Stat(romPath); err != nil {
		t.Skip("nestest.nes not available")
	}

	logFile, err := os.Open(logPath)
	if err != nil {
		t.Skip("nestest.log not available")
	}
	defer logFile.Close()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	ins, err := instance.NewInstance(instance.Test, prefs)
	test.DemandSuccess(t, err)
	ins.Normalise()

	nes, err := hardware.NewNES(ins, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.AttachCartridge(cartridgeloader.NewLoader(romPath)))

	// the automated mode of nestest starts at 0xc000
	nes.CPU.PC.Load(0xc000)

	scanner := bufio.NewScanner(logFile)
	var n int
	for scanner.Scan() {
		n++
		expected := strings.TrimRight(scanner.Text(), "\r ")
		line := disassembly.TraceLine(nes.Mem, disassembly.Snapshot(nes))
		if line != expected {
			t.Fatalf("line %d\nexpected: %s\n     got: %s", n, expected, line)
		}
		test.DemandSuccess(t, nes.Step())
	}
	test.DemandSuccess(t, scanner.Err())

	// result codes for the documented and undocumented instruction tests
	test.ExpectEquality(t, nes.Mem.Peek(0x0002), uint8(0x00))
	test.ExpectEquality(t, nes.Mem.Peek(0x0003), uint8(0x00))
}
