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

package regression

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/database"
	"github.com/jetsetilly/gophernes/paths"
)

// Error is the pattern for errors returned by the regression functions.
const Error = "regression: %v"

// InvalidKey is the pattern for errors caused by a key argument that is not
// a number.
const InvalidKey = "regression: invalid key (%s)"

const regressionDB = "regressionDB"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// run the regression. if newRegression is true then the result of the
	// run is recorded in the entry. returns false and a description of the
	// failure if the run does not match the recorded result
	regress(newRegression bool) (bool, string, error)
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryID, deserialiseDigestEntry)
}

func startSession(activity database.Activity) (*database.Session, error) {
	pth, err := paths.ResourcePath(regressionDB)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}
	return database.StartSession(pth, activity, initDBSession)
}

// RegressList writes all the entries in the database to the output.
func RegressList(output io.Writer) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regression and adds it to the database.
func RegressAdd(output io.Writer, reg Regressor) (rerr error) {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.EndSession(rerr == nil); err != nil && rerr == nil {
			rerr = err
		}
	}()

	fmt.Fprintf(output, "adding: %s\n", reg)

	if _, _, err := reg.regress(true); err != nil {
		return curated.Errorf(Error, err)
	}

	key, err := db.Add(reg)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "added: %03d %s\n", key, reg)

	return nil
}

// RegressDelete removes an entry from the database. The confirmation reader
// is used to confirm the deletion. A nil reader deletes without confirmation.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) (rerr error) {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return err
	}

	// the database is only written if an entry was deleted
	deleted := false
	defer func() {
		if err := db.EndSession(deleted); err != nil && rerr == nil {
			rerr = err
		}
	}()

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	if confirmation != nil {
		fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)
		s, err := bufio.NewReader(confirmation).ReadString('\n')
		if err != nil && err != io.EOF {
			return curated.Errorf(Error, err)
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "y") {
			return nil
		}
	}

	if err := db.Delete(v); err != nil {
		return err
	}
	deleted = true
	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return nil
}

// RegressRun runs the entries with the keys. An empty list of keys runs every
// entry. Returns an error if any of the entries fail.
func RegressRun(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	var numSucceed, numFail, numError int

	// stop selection early if failOnError is set
	errStop := fmt.Errorf("stop")

	_, err = db.SelectKeys(func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf(Error, fmt.Sprintf("entry %03d is not a regression entry", key))
		}

		ok, detail, err := reg.regress(false)
		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, " ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "        %v\n", err)
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "        %s\n", detail)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		if failOnError && (err != nil || !ok) {
			return errStop
		}
		return nil
	}, keys...)

	if err != nil && err != errStop {
		return err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, ", %d errors", numError)
	}
	fmt.Fprintln(output)

	if numFail > 0 || numError > 0 {
		return curated.Errorf(Error, "not all tests succeeded")
	}

	return nil
}
