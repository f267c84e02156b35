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

// Package zbplume calculates vertical atmospheric profiles for batches of
// independent columns using a zero-buoyancy entraining-plume
// parameterization. Starting from a surface state, it integrates the
// coupled temperature and log-pressure equations upward in height with an
// explicit 4th-order Runge-Kutta scheme, alongside a non-entraining
// moist-adiabat reference profile.
package zbplume

import (
	"math"

	"github.com/ctessum/sparse"

	"github.com/spatialmodel/zbplume/integrate"
	"github.com/spatialmodel/zbplume/physics"
	"github.com/spatialmodel/zbplume/science/lapse/zerobuoy"
)

// Version gives the version number of this library.
const Version = "0.1.0"

// Plume holds the base state and model choices for one batched profile
// calculation. Temperature defines the batch shape; Entrainment and
// PrecipEfficiency must either match that shape or hold a single value
// shared by every column.
type Plume struct {
	// Heights specifies the vertical levels [m] to calculate profiles
	// at. It can either be a (bottom, top) bound pair, in which case
	// levels are generated every 50 m with a possibly shorter final
	// step, or an explicit increasing sequence of three or more levels.
	Heights []float64

	// Pressure [Pa] is either the base pressure for each column or a
	// full pressure profile, as declared by PressureMode.
	Pressure *sparse.DenseArray

	// Temperature is the plume base temperature [K] for each column.
	Temperature *sparse.DenseArray

	// Entrainment is the base entrainment rate [1/m] for each column.
	Entrainment *sparse.DenseArray

	// PrecipEfficiency is the precipitation efficiency [0–1] for each
	// column.
	PrecipEfficiency *sparse.DenseArray

	// Policy determines how the effective entrainment rate varies with
	// height. The default is ConstEntrainment.
	Policy EntrainmentPolicy

	// PressureMode declares how the Pressure array is laid out. The
	// default, AutoPressure, decides from the array shape.
	PressureMode PressureMode

	// Lapse and LapseAlt calculate lapse rates and relative humidity.
	// If nil, they default to zerobuoy.Evaluator and
	// zerobuoy.EvaluatorA, respectively. LapseAlt is only used by the
	// GammaEntrainment policy.
	Lapse    LapseRater
	LapseAlt LapseRater
}

// A Profile holds calculated vertical profiles for a batch of columns.
// Each array has the height level as its leading axis, followed by the
// batch shape of the input temperature array.
type Profile struct {
	// Height is the sequence of vertical levels [m] shared by all
	// columns.
	Height []float64

	// Temperature is the plume temperature [K].
	Temperature *sparse.DenseArray

	// MoistTemperature is the temperature [K] of a non-entraining moist
	// adiabat started from the same base state.
	MoistTemperature *sparse.DenseArray

	// Pressure is pressure [Pa].
	Pressure *sparse.DenseArray

	// RelativeHumidity is the diagnosed environmental relative humidity
	// [fraction].
	RelativeHumidity *sparse.DenseArray

	// LapseDiagnostic is the latent-to-sensible heating ratio γ [-]
	// diagnosed at each level.
	LapseDiagnostic *sparse.DenseArray
}

// Profile integrates the plume equations upward through all height
// levels and returns the resulting profiles. It is a pure function of
// the Plume fields; calling it twice with the same inputs gives
// identical results.
func (p *Plume) Profile() (*Profile, error) {
	heights, err := levels(p.Heights)
	if err != nil {
		return nil, err
	}
	if p.Temperature == nil {
		return nil, &ConfigError{"base temperature must be specified"}
	}
	tShape := p.Temperature.Shape
	n := len(p.Temperature.Elements)
	nz := len(heights)

	pres, calcPressure, err := resolvePressure(p.PressureMode, p.Pressure, tShape, nz)
	if err != nil {
		return nil, err
	}
	ent, err := broadcast(p.Entrainment, tShape, "entrainment rate")
	if err != nil {
		return nil, err
	}
	pe, err := broadcast(p.PrecipEfficiency, tShape, "precipitation efficiency")
	if err != nil {
		return nil, err
	}

	base := p.Lapse
	if base == nil {
		base = zerobuoy.Evaluator{}
	}
	// The gamma-scaled policy evaluates each level with the alternate
	// closure; the gamma reference itself always comes from the
	// baseline closure.
	eval := base
	if p.Policy == GammaEntrainment {
		eval = p.LapseAlt
		if eval == nil {
			eval = zerobuoy.EvaluatorA{}
		}
	}

	// Current state, one entry per flattened column.
	tt := make([]float64, n) // plume temperature
	tm := make([]float64, n) // moist-adiabat reference temperature
	pp := make([]float64, n) // pressure
	copy(tt, p.Temperature.Elements)
	copy(tm, p.Temperature.Elements)
	for col := 0; col < n; col++ {
		if calcPressure {
			pp[col] = pres[col]
		} else {
			pp[col] = pres[col*nz]
		}
		if !finite(tt[col]) || !finite(pp[col]) || pp[col] <= 0 {
			return nil, &NumError{Column: col, Height: heights[0]}
		}
	}

	entr, err := newEntrainer(p.Policy, ent, pe, base, tt, pp)
	if err != nil {
		return nil, err
	}

	outT := make([]float64, n*nz)
	outTm := make([]float64, n*nz)
	outP := make([]float64, n*nz)
	outRH := make([]float64, n*nz)
	outGam := make([]float64, n*nz)

	eff := make([]float64, n)
	dry := make([]float64, n)
	moist := make([]float64, n)
	rh := make([]float64, n)
	gam := make([]float64, n)

	// RK4 state vectors hold temperature in the first half and
	// log-pressure in the second half.
	y := make([]float64, 2*n)
	yNext := make([]float64, 2*n)
	ym := make([]float64, 2*n)
	ymNext := make([]float64, 2*n)

	plume := newPlumeDeriv(eval, eff, pe)
	reference := newMoistAdiabatDeriv(eval, n)

	for i, z := range heights {
		entr.effective(z, eff)
		eval.Lapse(tt, pp, eff, pe, dry, moist, rh, gam)

		for col := 0; col < n; col++ {
			k := col*nz + i
			outT[k] = tt[col]
			outTm[k] = tm[col]
			outP[k] = pp[col]
			outRH[k] = rh[col]
			outGam[k] = gam[col]
		}
		if i == nz-1 {
			break
		}
		dz := heights[i+1] - z

		for col := 0; col < n; col++ {
			lnp := math.Log(pp[col])
			y[col] = tt[col]
			y[n+col] = lnp
			ym[col] = tm[col]
			// The reference adiabat shares the plume's actual pressure;
			// its own pressure component is discarded after the step.
			ym[n+col] = lnp
		}
		integrate.RK4Step(plume, y, z, dz, yNext)
		integrate.RK4Step(reference, ym, z, dz, ymNext)

		for col := 0; col < n; col++ {
			tt[col] = yNext[col]
			tm[col] = ymNext[col]
			if calcPressure {
				pp[col] = math.Exp(yNext[n+col])
			} else {
				pp[col] = pres[col*nz+i+1]
			}
			if !finite(tt[col]) || !finite(tm[col]) || !finite(pp[col]) || pp[col] <= 0 {
				return nil, &NumError{Column: col, Height: heights[i+1]}
			}
		}
	}

	out := &Profile{Height: heights}
	for _, o := range []struct {
		flat []float64
		dst  **sparse.DenseArray
	}{
		{outT, &out.Temperature},
		{outTm, &out.MoistTemperature},
		{outP, &out.Pressure},
		{outRH, &out.RelativeHumidity},
		{outGam, &out.LapseDiagnostic},
	} {
		*o.dst, err = reshapeHeightLeading(o.flat, tShape, nz)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// plumeDeriv is the right-hand side of the coupled plume equations
// d(T)/dz = −Γ and d(ln p)/dz = −g/(R_d T), evaluated for a whole batch
// of columns at once. The entrainment rate is held at the value
// calculated for the current level throughout the step.
type plumeDeriv struct {
	lapse           LapseRater
	entrainment, pe []float64
	p               []float64
	dry, moist      []float64
	rh, gamma       []float64
}

func newPlumeDeriv(lapse LapseRater, entrainment, pe []float64) *plumeDeriv {
	n := len(entrainment)
	return &plumeDeriv{
		lapse:       lapse,
		entrainment: entrainment,
		pe:          pe,
		p:           make([]float64, n),
		dry:         make([]float64, n),
		moist:       make([]float64, n),
		rh:          make([]float64, n),
		gamma:       make([]float64, n),
	}
}

// newMoistAdiabatDeriv returns the derivative of a pure non-entraining
// moist adiabat: entrainment rate zero and precipitation efficiency one
// for every column.
func newMoistAdiabatDeriv(lapse LapseRater, n int) *plumeDeriv {
	pe := make([]float64, n)
	for i := range pe {
		pe[i] = 1
	}
	return newPlumeDeriv(lapse, make([]float64, n), pe)
}

// Rate fulfils the integrate.Deriv interface.
func (d *plumeDeriv) Rate(z float64, y, dy []float64) {
	n := len(d.p)
	for col := 0; col < n; col++ {
		d.p[col] = math.Exp(y[n+col])
	}
	d.lapse.Lapse(y[:n], d.p, d.entrainment, d.pe, d.dry, d.moist, d.rh, d.gamma)
	for col := 0; col < n; col++ {
		dy[col] = -d.moist[col]
		dy[n+col] = -physics.G / (physics.Rd * y[col])
	}
}

// broadcast flattens a batch-shaped input array, expanding a
// single-valued array to one entry per column.
func broadcast(a *sparse.DenseArray, tShape []int, name string) ([]float64, error) {
	if a == nil {
		return nil, &ConfigError{name + " must be specified"}
	}
	n := 1
	for _, s := range tShape {
		n *= s
	}
	out := make([]float64, n)
	switch len(a.Elements) {
	case n:
		copy(out, a.Elements)
	case 1:
		for i := range out {
			out[i] = a.Elements[0]
		}
	default:
		return nil, &ShapeError{Context: name, Shape: a.Shape, Want: tShape}
	}
	return out, nil
}
