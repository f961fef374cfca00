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

package ppu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Timing of the NTSC PPU.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	visibleScanlines  = 240
	vblankScanline    = 241
	preRenderScanline = 261

	// the dot on which the cartridge scanline counter is clocked
	scanlineIRQDot = 260
)

// PPU is the 2C02 picture processing unit.
type PPU struct {
	instance *instance.Instance

	cart Cartridge

	// the cartridge scanline counter if the cartridge has one. nil otherwise
	scanlineIRQ mapper.ScanlineIRQ

	ctrl    control
	mask    mask
	status  uint8
	oamAddr uint8

	// the last value written to or read from a register
	latch uint8

	// PPUDATA read buffer
	buffer uint8

	// internal scroll registers
	v     loopy
	t     loopy
	fineX uint8
	w     bool

	vram    [vramSize]uint8
	palette [32]uint8
	oam     [256]uint8

	scanline int
	dot      int
	frameNum uint64
	oddFrame bool

	// the state of the NMI output and whether it has gone active since the
	// last call to NMI()
	nmiOutput bool
	nmiEdge   bool

	// a frame has been completed since the last call to NewFrame()
	frameDone bool

	bg  background
	spr sprites

	// the frame being drawn and the last completed frame
	back  *Frame
	front *Frame
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// cartridge can be nil and attached later with Plumb().
func NewPPU(instance *instance.Instance, cart Cartridge) *PPU {
	ppu := &PPU{
		instance: instance,
		back:     &Frame{},
		front:    &Frame{},
	}
	ppu.Plumb(cart)
	ppu.PowerOn()
	return ppu
}

// Plumb a new cartridge into the PPU. If the cartridge implements the
// mapper.ScanlineIRQ interface it will be clocked once per rendered
// scanline.
func (ppu *PPU) Plumb(cart Cartridge) {
	ppu.cart = cart
	ppu.scanlineIRQ = nil
	if s, ok := cart.(mapper.ScanlineIRQ); ok {
		ppu.scanlineIRQ = s
	}
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d", ppu.frameNum, ppu.scanline, ppu.dot)
}

// PowerOn puts the PPU into the power-on state. Memory is cleared or
// randomised depending on the RandomState preference.
func (ppu *PPU) PowerOn() {
	ppu.vram = [vramSize]uint8{}
	ppu.palette = [32]uint8{}
	ppu.oam = [256]uint8{}

	if ppu.instance != nil && ppu.instance.Prefs.RandomState.Get().(bool) {
		ppu.instance.Random.Fill(ppu.vram[:])
		ppu.instance.Random.Fill(ppu.oam[:])
		ppu.instance.Random.Fill(ppu.palette[:])
		for i := range ppu.palette {
			ppu.palette[i] &= 0x3f
		}
	}

	ppu.status = 0
	ppu.oamAddr = 0
	ppu.v = 0
	ppu.t = 0
	ppu.fineX = 0
	ppu.frameNum = 0
	ppu.Reset()
}

// Reset the PPU. Memory is unaffected.
func (ppu *PPU) Reset() {
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.latch = 0
	ppu.buffer = 0
	ppu.w = false
	ppu.scanline = 0
	ppu.dot = 0
	ppu.oddFrame = false
	ppu.nmiOutput = false
	ppu.nmiEdge = false
	ppu.frameDone = false
	ppu.bg = background{}
	ppu.spr = sprites{}
}

// Scanline returns the current scanline. The pre-render scanline is 261.
func (ppu *PPU) Scanline() int {
	return ppu.scanline
}

// Dot returns the current dot in the scanline.
func (ppu *PPU) Dot() int {
	return ppu.dot
}

// FrameNum returns the number of frames completed since power-on.
func (ppu *PPU) FrameNum() uint64 {
	return ppu.frameNum
}

// NMI returns true if the NMI output has gone active since the last call.
func (ppu *PPU) NMI() bool {
	e := ppu.nmiEdge
	ppu.nmiEdge = false
	return e
}

// NewFrame returns true if a frame has been completed since the last call.
func (ppu *PPU) NewFrame() bool {
	f := ppu.frameDone
	ppu.frameDone = false
	return f
}

// Frame returns the last completed frame. The frame should not be modified
// and is only valid until the next frame is completed.
func (ppu *PPU) Frame() *Frame {
	return ppu.front
}

func (ppu *PPU) completeFrame() {
	ppu.front, ppu.back = ppu.back, ppu.front
	ppu.frameNum++
	ppu.frameDone = true
}

func (ppu *PPU) oddFrameSkip() bool {
	return ppu.instance == nil || ppu.instance.Prefs.OddFrameSkip.Get().(bool)
}

func (ppu *PPU) spriteLimit() bool {
	return ppu.instance == nil || ppu.instance.Prefs.SpriteLimit.Get().(bool)
}

// Step advances the PPU by one dot.
func (ppu *PPU) Step() {
	visible := ppu.scanline < visibleScanlines
	preRender := ppu.scanline == preRenderScanline
	rendering := ppu.mask.rendering()

	if preRender && ppu.dot == 1 {
		ppu.status &^= statusVBlank | statusSpriteZero | statusOverflow
		ppu.updateNMI()
		ppu.completeFrame()
	}

	if (visible || preRender) && rendering {
		ppu.fetchBackground(preRender)

		switch ppu.dot {
		case 257:
			if visible {
				ppu.evaluateSprites()
			} else {
				ppu.spr.count = 0
			}
		case 340:
			if visible {
				ppu.fetchSprites()
			}
		}
	}

	if visible && ppu.dot >= 1 && ppu.dot <= FrameWidth {
		ppu.renderPixel(rendering)
	}

	if ppu.scanline == vblankScanline && ppu.dot == 1 {
		ppu.status |= statusVBlank
		ppu.updateNMI()
	}

	if (visible || preRender) && rendering && ppu.dot == scanlineIRQDot && ppu.scanlineIRQ != nil {
		ppu.scanlineIRQ.DecrementScanline()
	}

	ppu.dot++

	// the last dot of the pre-render scanline is skipped on odd frames
	if preRender && ppu.dot == DotsPerScanline-1 && ppu.oddFrame && rendering && ppu.oddFrameSkip() {
		ppu.dot++
	}

	if ppu.dot >= DotsPerScanline {
		ppu.dot = 0
		ppu.scanline++
		if ppu.scanline >= ScanlinesPerFrame {
			ppu.scanline = 0
			ppu.oddFrame = !ppu.oddFrame
		}
	}
}

// renderPixel draws the pixel for the current dot into the back buffer.
func (ppu *PPU) renderPixel(rendering bool) {
	x := ppu.dot - 1

	var bgPixel, bgPalette uint8
	if ppu.mask.background() && (ppu.mask.backgroundLeft() || x >= 8) {
		bgPixel, bgPalette = ppu.bg.pixel(ppu.fineX)
	}

	var sp spritePixel
	if rendering {
		sp = ppu.spr.pixel()
		if !ppu.mask.sprites() || (!ppu.mask.spritesLeft() && x < 8) {
			sp = spritePixel{}
		}
	}

	var entry uint16
	switch {
	case bgPixel == 0 && sp.pixel == 0:
		entry = 0
	case bgPixel == 0:
		entry = 0x10 | uint16(sp.palette)<<2 | uint16(sp.pixel)
	case sp.pixel == 0:
		entry = uint16(bgPalette)<<2 | uint16(bgPixel)
	default:
		if sp.behind {
			entry = uint16(bgPalette)<<2 | uint16(bgPixel)
		} else {
			entry = 0x10 | uint16(sp.palette)<<2 | uint16(sp.pixel)
		}

		// sprite zero hit never happens on the last column and is suppressed
		// in the left column unless both layers are shown there
		if sp.zero && x != FrameWidth-1 {
			if x >= 8 || (ppu.mask.backgroundLeft() && ppu.mask.spritesLeft()) {
				ppu.status |= statusSpriteZero
			}
		}
	}

	ppu.back[ppu.scanline*FrameWidth+x] = ppu.colour(entry)
}
