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

package cartridge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/cnrom"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mmc1"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mmc3"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/nrom"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/uxrom"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
)

// BatteryError is the pattern for errors returned by LoadBattery() and
// SaveBattery().
const BatteryError = "cartridge: battery: %v"

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	instance *instance.Instance

	Filename string
	Hash     string
	Header   Header

	img    *mapper.Image
	mapper mapper.CartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge(instance *instance.Instance) *Cartridge {
	return &Cartridge{instance: instance}
}

func (cart *Cartridge) String() string {
	if cart.mapper == nil {
		return "no cartridge"
	}
	return fmt.Sprintf("%s [%s] %s", cart.Filename, cart.mapper.ID(), cart.Header)
}

// IsEjected returns true if no cartridge has been attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper == nil
}

// Mapper returns the mapper implementation for the attached cartridge.
func (cart *Cartridge) Mapper() mapper.CartMapper {
	return cart.mapper
}

// NewMapper returns the mapper implementation for the image. Returns an error
// if the mapper number is not supported.
func NewMapper(img *mapper.Image) (mapper.CartMapper, error) {
	switch img.Number {
	case 0:
		return nrom.NewNROM(img), nil
	case 1:
		return mmc1.NewMMC1(img), nil
	case 2:
		return uxrom.NewUxROM(img), nil
	case 3:
		return cnrom.NewCNROM(img), nil
	case 4:
		return mmc3.NewMMC3(img), nil
	}
	return nil, curated.Errorf(UnsupportedMapper, img.Number)
}

// Attach the cartridge data specified by the loader. The loader will be
// loaded if necessary.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return err
	}

	img, h, err := NewImage(cartload.Data)
	if err != nil {
		return err
	}

	m, err := NewMapper(img)
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = h
	cart.img = img
	cart.mapper = m

	if h.Trainer {
		logger.Log(cart.instance, "cartridge", "trainer data ignored")
	}
	logger.Logf(cart.instance, "cartridge", "%s: %s", m.ID(), h)

	return nil
}

// BatteryRAM returns the PRG-RAM of the cartridge if it is battery backed.
// Returns nil otherwise.
func (cart *Cartridge) BatteryRAM() []uint8 {
	if cart.img == nil || !cart.img.Battery {
		return nil
	}
	return cart.img.PRGRAM
}

// batteryPath returns the path of the save file for the cartridge.
func (cart *Cartridge) batteryPath() (string, error) {
	return paths.ResourcePath("saves", fmt.Sprintf("%s.sav", cart.Hash))
}

// LoadBattery restores battery backed RAM from disk. It is not an error for
// the save file to not exist.
func (cart *Cartridge) LoadBattery() error {
	ram := cart.BatteryRAM()
	if ram == nil {
		return nil
	}

	pth, err := cart.batteryPath()
	if err != nil {
		return curated.Errorf(BatteryError, err)
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return curated.Errorf(BatteryError, err)
	}

	if len(data) != len(ram) {
		return curated.Errorf(BatteryError, fmt.Sprintf("save file is the wrong size (%d bytes)", len(data)))
	}
	copy(ram, data)

	logger.Logf(cart.instance, "cartridge", "battery RAM restored from %s", pth)

	return nil
}

// SaveBattery writes battery backed RAM to disk.
func (cart *Cartridge) SaveBattery() error {
	ram := cart.BatteryRAM()
	if ram == nil {
		return nil
	}

	pth, err := cart.batteryPath()
	if err != nil {
		return curated.Errorf(BatteryError, err)
	}

	if err := os.WriteFile(pth, ram, 0o600); err != nil {
		return curated.Errorf(BatteryError, err)
	}

	return nil
}
