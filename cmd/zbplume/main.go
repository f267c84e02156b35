/*
Copyright © 2024 the zbplume authors.
This file is part of zbplume.

zbplume is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

zbplume is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with zbplume.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command zbplume is a command-line interface for the zbplume
// zero-buoyancy plume model.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/zbplume/zbplumeutil"
)

func main() {
	if err := zbplumeutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
