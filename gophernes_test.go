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

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/test"
)

// writeCartridge creates an NROM cartridge file with a program of NOP
// instructions at 0xc000 and returns the path.
func writeCartridge(t *testing.T) string {
	t.Helper()

	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prg := make([]uint8, 0x4000)
	for i := 0; i < 8; i++ {
		prg[i] = 0xea
	}
	copy(prg[8:], []uint8{0x4c, 0x00, 0xc0})
	for _, v := range []int{0x3ffa, 0x3ffc, 0x3ffe} {
		prg[v] = 0x00
		prg[v+1] = 0xc0
	}

	data = append(data, prg...)
	data = append(data, make([]uint8, 0x2000)...)

	pth := filepath.Join(t.TempDir(), "nops.nes")
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))

	return pth
}

// isolate the preferences and battery saves from the user's configuration
func isolate(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("user configuration directory can not be redirected")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: RUN, TRACE, DISASM, DEBUG, PERFORMANCE, REGRESS, VERSION"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"trace", "-help"}, tw), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "Usage for TRACE mode:"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "-pc"))
}

func TestVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, tw), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "GopherNES "))
}

func TestArgumentErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, tw), exitParseError)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"trace"}, tw), exitModeError)
	test.ExpectEquality(t, tw.String(), "* error in TRACE mode: NES cartridge required for TRACE mode\n")

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"disasm", "a.nes", "b.nes"}, tw), exitModeError)
	test.ExpectEquality(t, tw.String(), "* error in DISASM mode: too many arguments for DISASM mode\n")
}

func TestTrace(t *testing.T) {
	isolate(t)
	pth := writeCartridge(t)

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"trace", "-count", "10", pth}, tw), exitOK)

	lines := strings.Split(strings.TrimSuffix(tw.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), 10)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "C000  EA        NOP"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "CYC:7"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[8], "C008  4C 00 C0  JMP $C000"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[9], "C000"))

	// the end of a long trace. the program loops every nine instructions
	rw, err := test.NewRingWriter(200)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, launch([]string{"trace", "-count", "901", pth}, rw), exitOK)
	lines = strings.Split(strings.TrimSuffix(rw.String(), "\n"), "\n")
	test.ExpectSuccess(t, strings.HasPrefix(lines[len(lines)-1], "C000"))

	// starting from a different address
	tw.Clear()
	test.DemandEquality(t, launch([]string{"trace", "-pc", "$c006", "-count", "1", pth}, tw), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "C006"))
}

func TestDisasm(t *testing.T) {
	isolate(t)
	pth := writeCartridge(t)

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"disasm", "-address", "$c007", "-count", "2", pth}, tw), exitOK)
	test.ExpectEquality(t, tw.String(), "C007  EA        NOP\nC008  4C 00 C0  JMP $C000\n")
}

func TestRun(t *testing.T) {
	isolate(t)
	pth := writeCartridge(t)
	wav := filepath.Join(t.TempDir(), "out.wav")

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"run", "-frames", "2", "-fpscap=false", "-digest", "-wav", wav, pth}, tw), exitOK)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "(frame 2)\n"))

	_, err := os.Stat(wav)
	test.ExpectSuccess(t, err)
}

func TestRegress(t *testing.T) {
	isolate(t)
	pth := writeCartridge(t)

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"regress", "add", "-frames", "1", pth}, tw), exitOK)
	test.ExpectEquality(t, tw.String(), "adding: [video] nops frames=1\nadded: 000 [video] nops frames=1\n")

	tw.Clear()
	test.DemandEquality(t, launch([]string{"regress", pth}, tw), exitModeError)

	tw.Clear()
	test.DemandEquality(t, launch([]string{"regress", "run"}, tw), exitOK)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "regression tests: 1 succeed, 0 fail\n"))

	tw.Clear()
	test.DemandEquality(t, launch([]string{"regress", "delete", "-yes", "0"}, tw), exitOK)
	tw.Clear()
	test.DemandEquality(t, launch([]string{"regress", "list"}, tw), exitOK)
	test.ExpectEquality(t, tw.String(), "database is empty\n")
}
