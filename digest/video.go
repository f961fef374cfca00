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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/ppu"
)

const pixelDepth = 3

// Video implements the hardware.FrameSink interface. It generates a SHA-1
// value of the image every frame. The image is not displayed anywhere.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum uint64
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// room for the previous digest value and an entire frame
		pixels: make([]byte, sha1.Size+ppu.FrameWidth*ppu.FrameHeight*pixelDepth),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frameNum = 0
}

// FrameNum returns the number of the most recent frame included in the
// digest.
func (dig *Video) FrameNum() uint64 {
	return dig.frameNum
}

// NewFrame implements the hardware.FrameSink interface.
func (dig *Video) NewFrame(frame *ppu.Frame, frameNum uint64) error {
	// fingerprints are chained by copying the value of the previous digest
	// to the head of the pixel data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for _, c := range frame {
		dig.pixels[i] = uint8(c >> 16)
		dig.pixels[i+1] = uint8(c >> 8)
		dig.pixels[i+2] = uint8(c)
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}
