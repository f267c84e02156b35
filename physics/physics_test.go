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

package physics

import (
	"testing"

	"github.com/ctessum/unit"
)

func TestDimensions(t *testing.T) {
	g := Gravity()
	if g.Value() != G {
		t.Errorf("%g != %g", g.Value(), G)
	}
	if err := g.Check(unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}); err != nil {
		t.Error(err)
	}

	rd := GasConstantDryAir()
	if rd.Value() != Rd {
		t.Errorf("%g != %g", rd.Value(), Rd)
	}
	if err := rd.Check(unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -2, unit.TemperatureDim: -1}); err != nil {
		t.Error(err)
	}
}
