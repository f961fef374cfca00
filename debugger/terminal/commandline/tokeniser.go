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

// Package commandline splits debugger input into tokens and converts tokens
// into the values expected by debugger commands.
//
// Hex values can be written with a leading dollar sign or with the 0x prefix.
// Both are normalised to the 0x prefix.
package commandline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinal error patterns.
const (
	MissingArgument = "missing argument for %s"
	InvalidNumber   = "invalid number (%s)"
)

// Tokens represents tokenised input.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of remaining tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list and a success boolean. If the end of
// the token list has been reached the function returns false.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list without advancing.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// GetNumber returns the next token as a number no larger than max. The label
// is used in the error message if the token is missing.
func (tk *Tokens) GetNumber(label string, max uint64) (uint64, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, label)
	}
	return ParseNumber(s, max)
}

// GetOptionalNumber is like GetNumber() except that the default value is
// returned if there are no more tokens.
func (tk *Tokens) GetOptionalNumber(def uint64, max uint64) (uint64, error) {
	s, ok := tk.Get()
	if !ok {
		return def, nil
	}
	return ParseNumber(s, max)
}

// ParseNumber parses a decimal or hex number no larger than max.
func ParseNumber(s string, max uint64) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil || v > max {
		return 0, curated.Errorf(InvalidNumber, s)
	}
	return v, nil
}

// TokeniseInput creates and returns a new Tokens instance. The first token
// is converted to upper case.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{
		input:  strings.TrimSpace(input),
		tokens: strings.Fields(input),
	}

	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	if len(tk.tokens) > 0 {
		tk.tokens[0] = strings.ToUpper(tk.tokens[0])
	}

	return tk
}
