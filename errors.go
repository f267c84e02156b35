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

import "fmt"

// All errors are fatal to the calling profile calculation; there are no
// partial results. ConfigError and ShapeError are detected before
// integration begins, NumError during stepping.

// ConfigError reports an invalid model configuration, such as a
// malformed height specification or an unknown entrainment policy.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "zbplume: invalid configuration: " + e.Reason
}

// ShapeError reports mutually inconsistent array shapes.
type ShapeError struct {
	Context string
	// Shape is the shape of the offending array; Want is the shape (or
	// batch shape) it was expected to be compatible with.
	Shape, Want []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("zbplume: %s: array shape %v is incompatible with %v", e.Context, e.Shape, e.Want)
}

// NumError reports a non-finite value produced during integration.
type NumError struct {
	// Column is the flattened batch index of the offending column.
	Column int
	// Height is the height level [m] at which the value was produced.
	Height float64
}

func (e *NumError) Error() string {
	return fmt.Sprintf("zbplume: non-finite value in column %d at height %g m", e.Column, e.Height)
}
