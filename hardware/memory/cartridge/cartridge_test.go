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

package cartridge_test

import (
	"runtime"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

// ines creates iNES data with the specified header fields. PRG data is filled
// with 0xea and CHR data with 0x55.
func ines(prg, chr int, flags6, flags7 uint8) []byte {
	data := []byte{'N', 'E', 'S', 0x1a, uint8(prg), uint8(chr), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		data = append(data, make([]byte, 512)...)
	}
	for i := 0; i < prg*0x4000; i++ {
		data = append(data, 0xea)
	}
	for i := 0; i < chr*0x2000; i++ {
		data = append(data, 0x55)
	}
	return data
}

func TestHeader(t *testing.T) {
	h, err := cartridge.ParseHeader(ines(2, 1, 0x41, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.PRGUnits, 2)
	test.ExpectEquality(t, h.CHRUnits, 1)
	test.ExpectEquality(t, h.Mapper, 4)
	test.ExpectEquality(t, h.Mirroring, mapper.Vertical)
	test.ExpectFailure(t, h.Battery)
	test.ExpectFailure(t, h.NES2)

	// high nibble of mapper number in flags 7
	h, err = cartridge.ParseHeader(ines(1, 1, 0x12, 0x40))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Mapper, 0x41)
	test.ExpectEquality(t, h.Mirroring, mapper.Horizontal)
	test.ExpectSuccess(t, h.Battery)

	// four screen
	h, err = cartridge.ParseHeader(ines(1, 1, 0x09, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Mirroring, mapper.FourScreen)

	// garbage in the end of the header means flags 7 is ignored
	data := ines(1, 1, 0x10, 0x40)
	copy(data[7:16], "DiskDude!")
	h, err = cartridge.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Mapper, 1)

	// NES 2.0 header
	data = ines(1, 0, 0x00, 0x08)
	data[10] = 0x07
	h, err = cartridge.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, h.NES2)
	test.ExpectEquality(t, h.PRGRAMSize, 0x2000)
}

func TestNotINES(t *testing.T) {
	_, err := cartridge.ParseHeader([]byte("NES"))
	test.ExpectSuccess(t, curated.Is(err, cartridge.NotINES))

	data := ines(1, 1, 0, 0)
	data[3] = 0
	_, err = cartridge.ParseHeader(data)
	test.ExpectSuccess(t, curated.Is(err, cartridge.NotINES))
}

func TestImage(t *testing.T) {
	img, _, err := cartridge.NewImage(ines(1, 0, 0x00, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img.PRGROM), 0x4000)
	test.ExpectEquality(t, len(img.CHR), 0x2000)
	test.ExpectSuccess(t, img.CHRRAM)
	test.ExpectFailure(t, img.HasPRGRAM())

	// trainer is skipped
	img, h, err := cartridge.NewImage(ines(1, 1, 0x04, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, h.Trainer)
	test.ExpectEquality(t, img.PRGROM[0], uint8(0xea))
	test.ExpectEquality(t, img.CHR[0], uint8(0x55))
	test.ExpectFailure(t, img.CHRRAM)

	// MMC1 has RAM even when the header doesn't say so
	img, _, err = cartridge.NewImage(ines(1, 1, 0x10, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img.PRGRAM), 0x2000)
}

func TestTruncated(t *testing.T) {
	data := ines(2, 1, 0, 0)

	_, _, err := cartridge.NewImage(data[:len(data)-1])
	test.ExpectSuccess(t, curated.Is(err, cartridge.TruncatedData))
	test.ExpectEquality(t, err.Error(), "cartridge: CHR data truncated")

	_, _, err = cartridge.NewImage(data[:0x4000])
	test.ExpectSuccess(t, curated.Is(err, cartridge.TruncatedData))
	test.ExpectEquality(t, err.Error(), "cartridge: PRG data truncated")

	_, _, err = cartridge.NewImage(ines(0, 1, 0, 0))
	test.ExpectSuccess(t, curated.Is(err, cartridge.TruncatedData))
}

func TestMapperSelection(t *testing.T) {
	expected := map[uint8]string{
		0: "NROM",
		1: "MMC1",
		2: "UxROM",
		3: "CNROM",
		4: "MMC3",
	}

	for n, id := range expected {
		cart := cartridge.NewCartridge(nil)
		test.ExpectSuccess(t, cart.IsEjected())
		err := cart.Attach(cartridgeloader.NewLoaderFromData("test", ines(2, 1, n<<4, 0)))
		test.DemandSuccess(t, err)
		test.ExpectFailure(t, cart.IsEjected())
		test.ExpectEquality(t, cart.Mapper().ID(), id)
	}

	cart := cartridge.NewCartridge(nil)
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test", ines(2, 1, 0x50, 0)))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))
	test.ExpectEquality(t, err.Error(), "cartridge: unsupported mapper (5)")
	test.ExpectSuccess(t, cart.IsEjected())
}

func TestBattery(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("user configuration directory can not be redirected")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	data := ines(1, 1, 0x12, 0)

	cart := cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("test", data)))
	ram := cart.BatteryRAM()
	test.DemandEquality(t, len(ram), 0x2000)

	// no save file yet
	test.ExpectSuccess(t, cart.LoadBattery())

	cart.Mapper().CPUWrite(0x6000, 0x12)
	cart.Mapper().CPUWrite(0x7fff, 0x34)
	test.DemandSuccess(t, cart.SaveBattery())

	cart = cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("test", data)))
	test.DemandSuccess(t, cart.LoadBattery())
	v, _ := cart.Mapper().CPURead(0x6000)
	test.ExpectEquality(t, v, uint8(0x12))
	v, _ = cart.Mapper().CPURead(0x7fff)
	test.ExpectEquality(t, v, uint8(0x34))

	// cartridges without a battery
	cart = cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("test", ines(1, 1, 0x10, 0))))
	test.ExpectEquality(t, len(cart.BatteryRAM()), 0)
}
