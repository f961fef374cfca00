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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gophernes/curated"
)

const localResourcePath = ".gophernes"
const configResourcePath = "gophernes"

// ResourcePath returns the path to the named resource. The final element of
// the resource list is treated as a file name and all preceding elements as
// directories. Directories are created as required.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	if len(resource) == 0 {
		return base, nil
	}

	dir := filepath.Join(append([]string{base}, resource[:len(resource)-1]...)...)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(dir, resource[len(resource)-1]), nil
}

func basePath() (string, error) {
	if _, err := os.Stat(localResourcePath); err == nil {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(cnf, configResourcePath), nil
}
