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

// Package database is a very simple flat file store for entries of arbitrary
// types. Each entry occupies one line of the file:
//
//	key,id,field,field,...
//
// The key is a number unique to the entry and the id identifies the entry
// type. The meaning of the remaining fields depends on the type.
//
// The database is used through a Session, started with StartSession() and
// ended with EndSession():
//
//	db, err := database.StartSession(pth, database.ActivityModifying, func(db *database.Session) error {
//		return db.RegisterEntryType("video", deserialiseVideo)
//	})
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(true)
//
// The function passed to StartSession() registers the entry types that the
// database may contain, along with the function that recreates an entry from
// its fields. Entries with an unregistered id cause StartSession() to fail.
package database
