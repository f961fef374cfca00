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

package database

// Entry is the interface that must be satisfied by all entry types.
type Entry interface {
	// the id of the entry type. must be the same string as was given to
	// RegisterEntryType()
	ID() string

	// human readable summary of the entry
	String() string

	// the fields that will be passed to the deserialiser when the database
	// is next read. fields must not contain the field or entry separators
	Serialise() ([]string, error)

	// called when the entry is deleted from the database
	CleanUp() error
}

// Deserialiser recreates an entry from the fields that were returned by the
// entry's Serialise() function.
type Deserialiser func(fields []string) (Entry, error)
