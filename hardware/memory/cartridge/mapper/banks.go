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

package mapper

import (
	"fmt"
	"strings"
)

// Common bank sizes.
const (
	Bank1k  = 0x0400
	Bank2k  = 0x0800
	Bank4k  = 0x1000
	Bank8k  = 0x2000
	Bank16k = 0x4000
	Bank32k = 0x8000
)

// NumBanks returns the number of banks of the specified size in data of the
// specified length. The result is never less than one.
func NumBanks(length int, size int) int {
	n := length / size
	if n < 1 {
		return 1
	}
	return n
}

// BankOffset returns the byte offset of the bank in data of the specified
// length. Bank numbers wrap to the number of banks actually present. A
// negative bank number counts backwards from the last bank, so -1 is the last
// bank.
func BankOffset(bank int, size int, length int) int {
	n := NumBanks(length, size)
	bank %= n
	if bank < 0 {
		bank += n
	}
	return bank * size
}

// BankInfo describes a single mapped bank.
type BankInfo struct {
	Label  string
	Origin uint16
	Number int
	Size   int
}

func (b BankInfo) String() string {
	return fmt.Sprintf("%s %04x-%04x: %d", b.Label, b.Origin, int(b.Origin)+b.Size-1, b.Number)
}

// SummariseBanks is a helper for implementations of MappedBanks().
func SummariseBanks(banks []BankInfo) string {
	s := strings.Builder{}
	for i, b := range banks {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(b.String())
	}
	return s.String()
}
