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

package debugger

import (
	"fmt"
	"sort"
	"strings"
)

// breakpoints halt RUN when the program counter reaches one of the
// addresses. The address is checked at every instruction boundary.
type breakpoints struct {
	pc map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{pc: make(map[uint16]bool)}
}

func (bp *breakpoints) add(address uint16) bool {
	if bp.pc[address] {
		return false
	}
	bp.pc[address] = true
	return true
}

func (bp *breakpoints) remove(address uint16) bool {
	if !bp.pc[address] {
		return false
	}
	delete(bp.pc, address)
	return true
}

func (bp *breakpoints) clear() {
	bp.pc = make(map[uint16]bool)
}

func (bp *breakpoints) check(address uint16) bool {
	return bp.pc[address]
}

func (bp *breakpoints) list() []uint16 {
	l := make([]uint16, 0, len(bp.pc))
	for a := range bp.pc {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

func (bp *breakpoints) String() string {
	l := bp.list()
	if len(l) == 0 {
		return "no breakpoints"
	}
	s := make([]string, len(l))
	for i, a := range l {
		s[i] = fmt.Sprintf("$%04x", a)
	}
	return strings.Join(s, " ")
}
