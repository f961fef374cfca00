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

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Activity defines the activity that will be performed during a session.
type Activity int

// List of valid Activity values.
const (
	// the database will not be written to
	ActivityReading Activity = iota

	// the database file must already exist
	ActivityModifying

	// the database file will be created if it does not exist
	ActivityCreating
)

// Sentinal error patterns.
const (
	Error          = "database: %v"
	NotAvailable   = "database: key not available (%d)"
	UnknownEntryID = "database: unrecognised entry type (%s)"
	MalformedEntry = "database: malformed entry on line %d"
	TooManyEntries = "database: maximum number of entries exceeded (%d)"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","

// Session is an open database.
type Session struct {
	pth      string
	activity Activity

	entryTypes map[string]Deserialiser
	entries    map[int]Entry
}

// StartSession reads the database file and deserialises all the entries. The
// init function should register the entry types that the database may
// contain.
func StartSession(pth string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		pth:        pth,
		activity:   activity,
		entryTypes: make(map[string]Deserialiser),
		entries:    make(map[int]Entry),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf(Error, err)
		}
	}

	f, err := os.Open(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf(Error, err)
	}
	defer f.Close()

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		fields := strings.Split(s, fieldSep)
		if len(fields) < 2 {
			return curated.Errorf(MalformedEntry, line)
		}

		key, err := strconv.Atoi(fields[0])
		if err != nil || key < 0 || key >= maxEntries {
			return curated.Errorf(MalformedEntry, line)
		}
		if _, ok := db.entries[key]; ok {
			return curated.Errorf(MalformedEntry, line)
		}

		des, ok := db.entryTypes[fields[1]]
		if !ok {
			return curated.Errorf(UnknownEntryID, fields[1])
		}

		ent, err := des(fields[2:])
		if err != nil {
			return curated.Errorf(Error, fmt.Errorf("line %d: %w", line, err))
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(Error, err)
	}

	return nil
}

// EndSession closes the session. If commit is true and the session activity
// allows it, the entries are written to the database file.
func (db *Session) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	var s strings.Builder
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(Error, err)
		}

		s.WriteString(strconv.Itoa(key))
		s.WriteString(fieldSep)
		s.WriteString(ent.ID())
		for _, f := range fields {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString("\n")
	}

	if err := os.WriteFile(db.pth, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(Error, err)
	}

	return nil
}

// RegisterEntryType tells the session about an entry type that it may find
// in the database.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("entry type %s already registered", id)
	}
	db.entryTypes[id] = des
	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns the keys of all entries in order.
func (db *Session) SortedKeyList() []int {
	keys := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if len(db.entries) == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", len(db.entries))
	return err
}

// Add an entry to the database. Returns the key of the new entry.
func (db *Session) Add(ent Entry) (int, error) {
	for key := 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			db.entries[key] = ent
			return key, nil
		}
	}
	return -1, curated.Errorf(TooManyEntries, maxEntries)
}

// Get returns the entry with the key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(NotAvailable, key)
	}
	return ent, nil
}

// Delete the entry with the key. The entry's CleanUp() function is called
// before the entry is removed.
func (db *Session) Delete(key int) error {
	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(NotAvailable, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(Error, err)
	}

	delete(db.entries, key)

	return nil
}
