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

package regression_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/regression"
	"github.com/jetsetilly/gophernes/test"
)

// writeCartridge creates an NROM cartridge that enables rendering and then
// loops forever. the pattern table is filled so that the background is not
// blank.
func writeCartridge(t *testing.T) string {
	t.Helper()

	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{
		0xa9, 0x0a, // LDA #$0a
		0x8d, 0x01, 0x20, // STA $2001
		0x4c, 0x05, 0xc0, // JMP $c005
	})
	for _, v := range []int{0x3ffa, 0x3ffc, 0x3ffe} {
		prg[v] = 0x00
		prg[v+1] = 0xc0
	}

	chr := make([]uint8, 0x2000)
	for i := range chr {
		chr[i] = uint8(i)
	}

	data = append(data, prg...)
	data = append(data, chr...)

	pth := filepath.Join(t.TempDir(), "pattern.nes")
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))

	return pth
}

func isolate(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("user configuration directory can not be redirected")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestParseMode(t *testing.T) {
	m, err := regression.ParseMode("VIDEO")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, regression.ModeVideo)

	m, err = regression.ParseMode("audio")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, regression.ModeAudio)

	_, err = regression.ParseMode("smell")
	test.ExpectSuccess(t, curated.Is(err, regression.UnknownMode))
}

func TestRegression(t *testing.T) {
	isolate(t)
	cart := writeCartridge(t)

	tw := &test.CompareWriter{}
	test.DemandSuccess(t, regression.RegressList(tw))
	test.ExpectEquality(t, tw.String(), "database is empty\n")

	_, err := regression.NewDigestRegression(regression.ModeVideo, cartridgeloader.NewLoader(cart), 0, "")
	test.ExpectFailure(t, err)

	for _, m := range []regression.Mode{regression.ModeVideo, regression.ModeAudio} {
		reg, err := regression.NewDigestRegression(m, cartridgeloader.NewLoader(cart), 3, "")
		test.DemandSuccess(t, err)
		tw.Clear()
		test.DemandSuccess(t, regression.RegressAdd(tw, reg))
	}
	test.ExpectSuccess(t, strings.Contains(tw.String(), "added: 001 [audio] pattern frames=3"))

	tw.Clear()
	test.DemandSuccess(t, regression.RegressList(tw))
	test.ExpectEquality(t, tw.String(), "000 [video] pattern frames=3\n001 [audio] pattern frames=3\nTotal: 2\n")

	// running the entries again produces the same digests
	tw.Clear()
	test.DemandSuccess(t, regression.RegressRun(tw, false, false, nil))
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "regression tests: 2 succeed, 0 fail\n"))

	tw.Clear()
	test.DemandSuccess(t, regression.RegressRun(tw, false, false, []string{"1"}))
	test.ExpectEquality(t, tw.String(), "succeed: 001 [audio] pattern frames=3\nregression tests: 1 succeed, 0 fail\n")

	err = regression.RegressRun(tw, false, false, []string{"one"})
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))
}

func TestFailure(t *testing.T) {
	isolate(t)
	cart := writeCartridge(t)

	reg, err := regression.NewDigestRegression(regression.ModeVideo, cartridgeloader.NewLoader(cart), 2, "changed")
	test.DemandSuccess(t, err)
	tw := &test.CompareWriter{}
	test.DemandSuccess(t, regression.RegressAdd(tw, reg))

	// change the recorded digest in the database file
	pth, err := paths.ResourcePath("regressionDB")
	test.DemandSuccess(t, err)
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	fields := strings.Split(strings.TrimSpace(string(data)), ",")
	test.DemandEquality(t, len(fields), 7)
	fields[5] = "0000"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(strings.Join(fields, ",")+"\n"), 0o600))

	tw.Clear()
	err = regression.RegressRun(tw, true, false, nil)
	test.ExpectSuccess(t, curated.Is(err, regression.Error))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "failure: 000 [video] pattern frames=2 [changed]"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "expected 0000"))
}

func TestDelete(t *testing.T) {
	isolate(t)
	cart := writeCartridge(t)

	reg, err := regression.NewDigestRegression(regression.ModeVideo, cartridgeloader.NewLoader(cart), 1, "")
	test.DemandSuccess(t, err)
	tw := &test.CompareWriter{}
	test.DemandSuccess(t, regression.RegressAdd(tw, reg))

	err = regression.RegressDelete(tw, nil, "x")
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))

	// declining the confirmation keeps the entry
	tw.Clear()
	test.DemandSuccess(t, regression.RegressDelete(tw, strings.NewReader("n\n"), "0"))
	test.DemandSuccess(t, regression.RegressList(tw))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "Total: 1"))

	tw.Clear()
	test.DemandSuccess(t, regression.RegressDelete(tw, strings.NewReader("y\n"), "0"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "deleted test #000"))

	tw.Clear()
	test.DemandSuccess(t, regression.RegressList(tw))
	test.ExpectEquality(t, tw.String(), "database is empty\n")

	test.ExpectFailure(t, regression.RegressDelete(tw, nil, "0"))
}
