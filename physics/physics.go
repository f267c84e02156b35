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

// Package physics holds the physical constants shared by the plume
// model components.
package physics

import "github.com/ctessum/unit"

// physical constants
const (
	G       = 9.80665 // gravitational acceleration [m/s2]
	Rd      = 287.058 // (J /kg K), specific gas constant for dry air
	Rv      = 461.5   // (J /kg K), specific gas constant for water vapor
	Cp      = 1005.7  // (J /kg K), specific heat of dry air at constant pressure
	Lv      = 2.501e6 // latent heat of vaporization of water [J/kg]
	Epsilon = Rd / Rv // ratio of dry air and water vapor gas constants [-]
)

// Gravity returns the gravitational acceleration as a dimensioned
// quantity [m s-2].
func Gravity() *unit.Unit {
	return unit.New(G, unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2})
}

// GasConstantDryAir returns the specific gas constant of dry air as a
// dimensioned quantity [m2 s-2 K-1].
func GasConstantDryAir() *unit.Unit {
	return unit.New(Rd, unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -2, unit.TemperatureDim: -1})
}
