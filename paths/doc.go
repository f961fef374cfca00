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

// Package paths should be used whenever a request to the filesystem is made
// for preferences or battery backed cartridge RAM. The function ResourcePath()
// prepends the correct path, creating directories as required.
//
// If a directory named ".gophernes" exists in the current working directory
// then that is used as the base path. Otherwise the "gophernes" directory in
// the user's configuration directory (as returned by os.UserConfigDir()) is
// used.
package paths
