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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// LoadError is the pattern for all errors returned by Load().
const LoadError = "cartridgeloader: %v"

// Loader names an iNES file and, once Load() has been called, holds its
// contents.
type Loader struct {
	// a local filename or an http/https URL
	Filename string

	// SHA-1 of the data as a hex string. if it is set before Load() is called
	// then the loaded data must match it. it is always set after a successful
	// load
	Hash string

	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// NewLoaderFromData creates a Loader that has already been loaded. The name
// is only used for display.
func NewLoaderFromData(name string, data []byte) Loader {
	return Loader{
		Filename: name,
		Hash:     hash(data),
		Data:     data,
	}
}

func hash(data []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}

// ShortName is the filename without the directory or the extension.
func (cl Loader) ShortName() string {
	base := filepath.Base(cl.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasLoaded returns true if the Loader holds data.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data if it hasn't already been loaded.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	data, err := fetch(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	h := hash(data)
	if cl.Hash != "" && cl.Hash != h {
		return curated.Errorf(LoadError, fmt.Sprintf("%s does not have the expected hash", cl.Filename))
	}

	cl.Data = data
	cl.Hash = h

	return nil
}

// fetch reads a local file or an http/https URL. Single letter schemes are
// windows drive letters.
func fetch(filename string) ([]byte, error) {
	u, err := url.Parse(filename)
	if err != nil || len(u.Scheme) <= 1 || u.Scheme == "file" {
		return os.ReadFile(filename)
	}

	switch u.Scheme {
	case "http", "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: %s", filename, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}

	return nil, fmt.Errorf("unsupported URL scheme (%s)", u.Scheme)
}
