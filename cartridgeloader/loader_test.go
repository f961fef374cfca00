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

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.nes")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("abc"), 0o600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.ShortName(), "game")
	test.ExpectFailure(t, cl.HasLoaded())

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Hash, "a9993e364706816aba3e25717850c26c9cd0d89d")

	// unexpected hash
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectFailure(t, cl.HasLoaded())

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectFailure(t, cl.Load())
}

func TestLoaderFromData(t *testing.T) {
	cl := cartridgeloader.NewLoaderFromData("test", []byte("abc"))
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Hash, "a9993e364706816aba3e25717850c26c9cd0d89d")
	test.ExpectSuccess(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.nes" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("abc"))
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/game.nes")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), "abc")
	test.ExpectEquality(t, cl.ShortName(), "game")

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.nes")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectFailure(t, cl.HasLoaded())

	cl = cartridgeloader.NewLoader("ftp://example.com/game.nes")
	test.ExpectFailure(t, cl.Load())
}
