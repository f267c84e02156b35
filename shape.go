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

import "github.com/ctessum/sparse"

// PressureMode declares the layout of the pressure input array.
type PressureMode int

const (
	// AutoPressure chooses among the other modes based on the shape of
	// the pressure array. If the batch shape happens to coincide with
	// the number of height levels the choice is ambiguous, so callers
	// working with such shapes should declare an explicit mode.
	AutoPressure PressureMode = iota

	// BasePressure means pressure is given at the base level only and
	// the rest of the profile is derived hydrostatically.
	BasePressure

	// FullPressure means pressure is given at every height level, with
	// the batch axes leading and height as the final axis.
	FullPressure

	// FullPressureHeightMajor is FullPressure with height as the
	// leading axis instead; the array is permuted to height-trailing
	// order before use.
	FullPressureHeightMajor
)

// resolvePressure flattens the pressure array according to the declared
// mode, resolving AutoPressure from the array shape. The returned slice
// holds one entry per column when pressure must be derived
// hydrostatically (calcPressure true), and the full batch-major,
// height-trailing profile otherwise.
func resolvePressure(mode PressureMode, pres *sparse.DenseArray, tShape []int, nz int) (flat []float64, calcPressure bool, err error) {
	if pres == nil {
		return nil, false, &ConfigError{"pressure must be specified"}
	}
	if mode == AutoPressure {
		switch {
		case shapesEqual(pres.Shape, tShape):
			mode = BasePressure
		case shapesEqual(pres.Shape, append(append([]int{}, tShape...), nz)):
			mode = FullPressure
		case shapesEqual(pres.Shape, append([]int{nz}, tShape...)):
			mode = FullPressureHeightMajor
		default:
			return nil, false, &ShapeError{Context: "pressure", Shape: pres.Shape, Want: tShape}
		}
	}

	n := 1
	for _, s := range tShape {
		n *= s
	}
	switch mode {
	case BasePressure:
		if !shapesEqual(pres.Shape, tShape) {
			return nil, false, &ShapeError{Context: "base pressure", Shape: pres.Shape, Want: tShape}
		}
		flat = make([]float64, n)
		copy(flat, pres.Elements)
		return flat, true, nil
	case FullPressure:
		want := append(append([]int{}, tShape...), nz)
		if !shapesEqual(pres.Shape, want) {
			return nil, false, &ShapeError{Context: "pressure profile", Shape: pres.Shape, Want: want}
		}
		flat = make([]float64, n*nz)
		copy(flat, pres.Elements)
		return flat, false, nil
	case FullPressureHeightMajor:
		want := append([]int{nz}, tShape...)
		if !shapesEqual(pres.Shape, want) {
			return nil, false, &ShapeError{Context: "pressure profile", Shape: pres.Shape, Want: want}
		}
		flat = make([]float64, n*nz)
		for lev := 0; lev < nz; lev++ {
			for col := 0; col < n; col++ {
				flat[col*nz+lev] = pres.Elements[lev*n+col]
			}
		}
		return flat, false, nil
	default:
		return nil, false, &ConfigError{"invalid pressure mode"}
	}
}

// reshapeHeightLeading restores a flattened batch-major [columns ×
// levels] result to the caller's batch shape with height as the leading
// axis.
func reshapeHeightLeading(flat []float64, tShape []int, nz int) (*sparse.DenseArray, error) {
	n := 1
	for _, s := range tShape {
		n *= s
	}
	if len(flat) != n*nz {
		return nil, &ShapeError{Context: "output", Shape: []int{len(flat)}, Want: append([]int{nz}, tShape...)}
	}
	out := sparse.ZerosDense(append([]int{nz}, tShape...)...)
	for col := 0; col < n; col++ {
		for lev := 0; lev < nz; lev++ {
			out.Elements[lev*n+col] = flat[col*nz+lev]
		}
	}
	return out, nil
}

func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
