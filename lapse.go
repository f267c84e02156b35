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

package zbplume

// A LapseRater calculates lapse rates and humidity diagnostics for a
// batch of columns at once.
// Package science/lapse/zerobuoy provides the implementations used by
// default.
type LapseRater interface {
	// Lapse calculates, from temperature T [K], pressure p [Pa],
	// entrainment rate [1/m], and precipitation efficiency precipEff
	// [0–1], the dry and moist lapse rates [K/m], the environmental
	// relative humidity rh [fraction], and the latent-to-sensible
	// heating ratio gamma [-]. All slices have one entry per column;
	// the last four are filled in by the call.
	Lapse(T, p, entrainment, precipEff, dryLapse, moistLapse, rh, gamma []float64)
}
