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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/audio"
	"github.com/jetsetilly/gophernes/hardware/state"
	"github.com/jetsetilly/gophernes/test"
)

func TestDeltaEncoding(t *testing.T) {
	var enc audio.Encoder
	var dec audio.Decoder

	for _, v := range []uint8{0, 10, 200, 200, 3, 255, 0} {
		test.ExpectEquality(t, dec.Decode(enc.Encode(v)), int(v))
	}

	enc.Reset()
	test.ExpectEquality(t, enc.Encode(5), 5)
	test.ExpectEquality(t, enc.Encode(2), -3)
}

func TestSilent(t *testing.T) {
	var u audio.Unit = audio.NewSilent()
	u.WriteRegister(0x4000, 0x3f)
	u.WriteRegister(0x4017, 0x40)
	test.ExpectEquality(t, u.Tick(), uint8(0))
	test.ExpectFailure(t, u.IRQ())
	_, ok := u.DMCRequest()
	test.ExpectFailure(t, ok)

	enc := state.NewEncoder()
	u.SaveState(enc)

	s := audio.NewSilent()
	dec := state.NewDecoder(enc.Data())
	s.LoadState(dec)
	test.DemandSuccess(t, dec.Err())
	test.ExpectEquality(t, s.Register(0x4000), uint8(0x3f))
	test.ExpectEquality(t, s.Register(0x4017), uint8(0x40))
}
