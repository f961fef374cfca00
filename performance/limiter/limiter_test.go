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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/performance/limiter"
	"github.com/jetsetilly/gophernes/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	test.ExpectFailure(t, lim.HasWaited())

	start := time.Now()
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, lim.NewFrame(nil, uint64(i)))
	}

	// five frames at 100 fps is 50ms. the lower bound is all that can be
	// relied on
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}
