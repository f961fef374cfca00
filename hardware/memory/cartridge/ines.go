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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Sentinal error patterns.
const (
	NotINES           = "cartridge: not an iNES file"
	UnsupportedMapper = "cartridge: unsupported mapper (%d)"
	TruncatedData     = "cartridge: %s data truncated"
)

const (
	inesMagic      = "NES\x1a"
	inesHeaderSize = 16
	trainerSize    = 512
	prgUnit        = 0x4000
	chrUnit        = 0x2000
	prgRAMUnit     = 0x2000
)

// Header is the information in the 16 byte iNES header.
type Header struct {
	// number of 16k PRG-ROM units and 8k CHR-ROM units. a CHR value of zero
	// means that the cartridge has 8k of CHR-RAM
	PRGUnits int
	CHRUnits int

	// size of PRG-RAM in bytes, as stated by the header. zero if the header
	// does not specify a size
	PRGRAMSize int

	Mapper     int
	Mirroring  mapper.Mirroring
	Battery    bool
	Trainer    bool
	FourScreen bool

	// the header is in the NES 2.0 format
	NES2 bool
}

func (h Header) String() string {
	s := fmt.Sprintf("mapper %d, %dk PRG, ", h.Mapper, h.PRGUnits*prgUnit/1024)
	if h.CHRUnits == 0 {
		s += "8k CHR-RAM"
	} else {
		s += fmt.Sprintf("%dk CHR", h.CHRUnits*chrUnit/1024)
	}
	s += fmt.Sprintf(", %s", h.Mirroring)
	if h.Battery {
		s += ", battery"
	}
	return s
}

// ParseHeader reads the iNES header at the start of data. Both iNES and NES
// 2.0 headers are recognised. Only the fields that are common to both formats
// are used, with the exception of the PRG-RAM size.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < inesHeaderSize || string(data[:len(inesMagic)]) != inesMagic {
		return Header{}, curated.Errorf(NotINES)
	}

	var h Header

	h.PRGUnits = int(data[4])
	h.CHRUnits = int(data[5])

	if data[6]&0x01 == 0x01 {
		h.Mirroring = mapper.Vertical
	} else {
		h.Mirroring = mapper.Horizontal
	}
	h.Battery = data[6]&0x02 == 0x02
	h.Trainer = data[6]&0x04 == 0x04
	h.FourScreen = data[6]&0x08 == 0x08
	if h.FourScreen {
		h.Mirroring = mapper.FourScreen
	}

	h.NES2 = data[7]&0x0c == 0x08

	h.Mapper = int(data[6] >> 4)

	switch {
	case h.NES2:
		h.Mapper |= int(data[7] & 0xf0)
		h.Mapper |= int(data[8]&0x0f) << 8
		h.PRGUnits |= int(data[9]&0x0f) << 8
		h.CHRUnits |= int(data[9]&0xf0) << 4

		// volatile and non-volatile PRG-RAM sizes are shift counts
		for _, shift := range []uint8{data[10] & 0x0f, data[10] >> 4} {
			if shift > 0 {
				h.PRGRAMSize += 64 << shift
			}
		}

	case data[12] == 0 && data[13] == 0 && data[14] == 0 && data[15] == 0:
		h.Mapper |= int(data[7] & 0xf0)
		h.PRGRAMSize = int(data[8]) * prgRAMUnit

	default:
		// bytes 7 to 15 of some old headers contain garbage. the upper nibble
		// of the mapper number is ignored in that case
	}

	return h, nil
}

// NewImage parses the iNES data and returns the image suitable for the
// mapper implementations.
func NewImage(data []byte) (*mapper.Image, Header, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	if h.PRGUnits == 0 {
		return nil, Header{}, curated.Errorf(TruncatedData, "PRG")
	}

	offset := inesHeaderSize
	if h.Trainer {
		offset += trainerSize
	}

	prgLen := h.PRGUnits * prgUnit
	if len(data) < offset+prgLen {
		return nil, Header{}, curated.Errorf(TruncatedData, "PRG")
	}

	img := &mapper.Image{
		Number:    h.Mapper,
		PRGROM:    make([]uint8, prgLen),
		Battery:   h.Battery,
		Mirroring: h.Mirroring,
	}
	copy(img.PRGROM, data[offset:offset+prgLen])
	offset += prgLen

	if h.CHRUnits == 0 {
		img.CHR = make([]uint8, chrUnit)
		img.CHRRAM = true
	} else {
		chrLen := h.CHRUnits * chrUnit
		if len(data) < offset+chrLen {
			return nil, Header{}, curated.Errorf(TruncatedData, "CHR")
		}
		img.CHR = make([]uint8, chrLen)
		copy(img.CHR, data[offset:offset+chrLen])
	}

	// PRG-RAM is present if the header says so or if the cartridge has a
	// battery. MMC1 and MMC3 boards nearly always have RAM even when the
	// header does not say so
	ramSize := h.PRGRAMSize
	if ramSize == 0 && (h.Battery || h.Mapper == 1 || h.Mapper == 4) {
		ramSize = prgRAMUnit
	}
	if ramSize > 0 {
		img.PRGRAM = make([]uint8, ramSize)
	}

	return img, h, nil
}
