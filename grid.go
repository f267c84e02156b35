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

// defaultSpacing is the height step [m] used when only the profile
// bounds are given.
const defaultSpacing = 50.

// levels expands a height specification into the full increasing
// sequence of levels to calculate. A 2-element input is interpreted as
// a (bottom, top) bound pair; the generated levels are spaced
// defaultSpacing apart, with the final step shortened so the sequence
// lands exactly on the top bound. An input of three or more elements is
// used directly after checking that it increases monotonically.
func levels(heights []float64) ([]float64, error) {
	switch {
	case len(heights) == 2:
		bottom, top := heights[0], heights[1]
		if top <= bottom {
			return nil, &ConfigError{"height bounds must be increasing"}
		}
		var out []float64
		for z := bottom; z < top; z += defaultSpacing {
			out = append(out, z)
		}
		return append(out, top), nil
	case len(heights) >= 3:
		out := make([]float64, len(heights))
		copy(out, heights)
		for i := 1; i < len(out); i++ {
			if out[i] <= out[i-1] {
				return nil, &ConfigError{"height levels must increase monotonically"}
			}
		}
		return out, nil
	default:
		return nil, &ConfigError{"height input must be a 2-element bound or an explicit level list"}
	}
}
