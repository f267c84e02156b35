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

import (
	"testing"

	"github.com/ctessum/sparse"
)

// counting fills an array with its flat element index so permutations
// can be traced.
func counting(dims ...int) *sparse.DenseArray {
	a := sparse.ZerosDense(dims...)
	for i := range a.Elements {
		a.Elements[i] = float64(i)
	}
	return a
}

func TestResolvePressureAuto(t *testing.T) {
	tShape := []int{3, 4}
	const nz = 10

	// Pressure with the batch shape means base-level pressure only.
	flat, calc, err := resolvePressure(AutoPressure, counting(3, 4), tShape, nz)
	if err != nil {
		t.Fatal(err)
	}
	if !calc {
		t.Error("batch-shaped pressure should resolve calcPressure true")
	}
	if len(flat) != 12 {
		t.Errorf("len(flat) = %d, want 12", len(flat))
	}

	// Height-trailing full profile needs no permutation.
	full := counting(3, 4, nz)
	flat, calc, err = resolvePressure(AutoPressure, full, tShape, nz)
	if err != nil {
		t.Fatal(err)
	}
	if calc {
		t.Error("level-shaped pressure should resolve calcPressure false")
	}
	for i, v := range flat {
		if v != full.Elements[i] {
			t.Fatalf("element %d permuted unexpectedly: %g != %g", i, v, full.Elements[i])
		}
	}

	// Height-major full profile is permuted to batch-major order: the
	// level-0 slice of the result must equal the first height slice of
	// the input.
	major := counting(nz, 3, 4)
	flat, calc, err = resolvePressure(AutoPressure, major, tShape, nz)
	if err != nil {
		t.Fatal(err)
	}
	if calc {
		t.Error("height-major pressure should resolve calcPressure false")
	}
	for col := 0; col < 12; col++ {
		if flat[col*nz] != major.Elements[col] {
			t.Errorf("column %d level 0: %g != %g", col, flat[col*nz], major.Elements[col])
		}
	}

	// Anything else is a shape error.
	_, _, err = resolvePressure(AutoPressure, counting(5, 4), tShape, nz)
	if err == nil {
		t.Fatal("expected error for incompatible shape")
	}
	serr, ok := err.(*ShapeError)
	if !ok {
		t.Fatalf("expected *ShapeError, got %T", err)
	}
	if !shapesEqual(serr.Shape, []int{5, 4}) || !shapesEqual(serr.Want, tShape) {
		t.Errorf("ShapeError should report both shapes, got %v and %v", serr.Shape, serr.Want)
	}
}

// A declared pressure mode must be validated rather than re-guessed.
func TestResolvePressureDeclared(t *testing.T) {
	tShape := []int{2}
	const nz = 4

	if _, calc, err := resolvePressure(BasePressure, counting(2), tShape, nz); err != nil || !calc {
		t.Errorf("BasePressure: calc = %v, err = %v", calc, err)
	}
	if _, _, err := resolvePressure(BasePressure, counting(2, nz), tShape, nz); err == nil {
		t.Error("BasePressure with a full profile should fail")
	}
	if _, calc, err := resolvePressure(FullPressure, counting(2, nz), tShape, nz); err != nil || calc {
		t.Errorf("FullPressure: calc = %v, err = %v", calc, err)
	}
	if _, calc, err := resolvePressure(FullPressureHeightMajor, counting(nz, 2), tShape, nz); err != nil || calc {
		t.Errorf("FullPressureHeightMajor: calc = %v, err = %v", calc, err)
	}
	if _, _, err := resolvePressure(PressureMode(99), counting(2), tShape, nz); err == nil {
		t.Error("invalid pressure mode should fail")
	}
	if _, _, err := resolvePressure(AutoPressure, nil, tShape, nz); err == nil {
		t.Error("nil pressure should fail")
	}
}

func TestReshapeHeightLeading(t *testing.T) {
	// Two columns, three levels, batch-major input.
	flat := []float64{
		1, 2, 3, // column 0
		4, 5, 6, // column 1
	}
	out, err := reshapeHeightLeading(flat, []int{2}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !shapesEqual(out.Shape, []int{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", out.Shape)
	}
	want := []float64{1, 4, 2, 5, 3, 6}
	for i, v := range out.Elements {
		if v != want[i] {
			t.Errorf("element %d: %g != %g", i, v, want[i])
		}
	}

	if _, err := reshapeHeightLeading(flat, []int{3}, 3); err == nil {
		t.Error("expected size-mismatch error")
	} else if _, ok := err.(*ShapeError); !ok {
		t.Errorf("expected *ShapeError, got %T", err)
	}
}
