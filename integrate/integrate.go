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

// Package integrate provides explicit single-step integration of
// systems of first-order ordinary differential equations.
package integrate

import "gonum.org/v1/gonum/floats"

// A Deriv is the right-hand side of a first-order ODE system
// dy/dx = f(x, y). Rate stores f(x, y) in dy; it must not modify y.
type Deriv interface {
	Rate(x float64, y, dy []float64)
}

// DerivFunc adapts an ordinary function to the Deriv interface.
type DerivFunc func(x float64, y, dy []float64)

// Rate calls f(x, y, dy).
func (f DerivFunc) Rate(x float64, y, dy []float64) { f(x, y, dy) }

// RK4Step advances the state y at x by one explicit 4th-order
// Runge-Kutta step of size h, storing the advanced state in yNext.
// yNext must have the same length as y and must not alias it.
func RK4Step(d Deriv, y []float64, x, h float64, yNext []float64) {
	n := len(y)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	d.Rate(x, y, k1)
	floats.AddScaledTo(tmp, y, h/2., k1)
	d.Rate(x+h/2., tmp, k2)
	floats.AddScaledTo(tmp, y, h/2., k2)
	d.Rate(x+h/2., tmp, k3)
	floats.AddScaledTo(tmp, y, h, k3)
	d.Rate(x+h, tmp, k4)

	for i := range yNext {
		yNext[i] = y[i] + h/6.*(k1[i]+2.*(k2[i]+k3[i])+k4[i])
	}
}
