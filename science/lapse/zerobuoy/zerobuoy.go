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

// Package zerobuoy calculates entraining-plume lapse rates and
// environmental relative humidity under the zero-buoyancy plume
// approximation, in which the rising plume and its environment share
// the same temperature profile and the environmental humidity adjusts
// to balance entrainment drying against the moisture left behind by
// incomplete precipitation.
package zerobuoy

import (
	"math"

	"github.com/spatialmodel/zbplume/physics"
)

// Evaluator is the baseline zero-buoyancy plume closure. It uses the
// Bolton (1980) saturation vapor pressure fit and approximates the
// saturation mixing ratio as ε·e_s/p. It fulfils the
// zbplume.LapseRater interface.
type Evaluator struct{}

// Lapse calculates the dry and moist lapse rates [K/m], relative
// humidity [fraction], and latent-to-sensible heating ratio γ [-] for
// each column.
func (Evaluator) Lapse(T, p, entrainment, precipEff, dryLapse, moistLapse, rh, gamma []float64) {
	for i := range T {
		es := satVaporPressure(T[i])
		qs := physics.Epsilon * es / p[i]
		dryLapse[i], moistLapse[i], rh[i], gamma[i] =
			closure(T[i], qs, entrainment[i], precipEff[i])
	}
}

// EvaluatorA is a variant of Evaluator that uses the Alduchov and
// Eskridge (1996) saturation vapor pressure fit and the exact
// saturation mixing ratio ε·e_s/(p−(1−ε)e_s). It is the closure used
// with the gamma-scaled entrainment policy.
type EvaluatorA struct{}

// Lapse calculates the same quantities as Evaluator.Lapse.
func (EvaluatorA) Lapse(T, p, entrainment, precipEff, dryLapse, moistLapse, rh, gamma []float64) {
	for i := range T {
		es := 610.94 * math.Exp(17.625*(T[i]-273.15)/(T[i]-30.11))
		qs := physics.Epsilon * es / (p[i] - (1.-physics.Epsilon)*es)
		dryLapse[i], moistLapse[i], rh[i], gamma[i] =
			closure(T[i], qs, entrainment[i], precipEff[i])
	}
}

// satVaporPressure is the Bolton (1980) fit to the saturation vapor
// pressure [Pa] over liquid water.
func satVaporPressure(T float64) float64 {
	return 611.2 * math.Exp(17.67*(T-273.15)/(T-29.65))
}

// closure evaluates the zero-buoyancy plume relations for one column,
// given the saturation specific humidity qs.
func closure(T, qs, ent, pe float64) (dry, moist, rh, gam float64) {
	dry = physics.G / physics.Cp
	// Ratio of latent to sensible heat release along the saturated
	// adiabat, γ = L²q*/(c_p R_v T²).
	gam = physics.Lv * physics.Lv * qs / (physics.Cp * physics.Rv * T * T)
	// Fractional lapse of saturation humidity along a dry adiabat,
	// L/(R_v T²)·Γ_d − g/(R_d T).
	qlapse := physics.Lv/(physics.Rv*T*T)*dry - physics.G/(physics.Rd*T)
	// Environmental humidity balancing entrainment drying against the
	// moisture not removed by precipitation. Saturated (RH = 1) in the
	// non-entraining limit.
	rh = (qlapse + (1.-pe)*ent) / (qlapse + ent)
	// Entraining moist-adiabatic lapse rate; with zero entrainment this
	// reduces to the standard saturated adiabat.
	moist = (dry*(1.+physics.Lv*qs/(physics.Rd*T)) +
		physics.Lv/physics.Cp*ent*(1.-rh)*qs) / (1. + gam)
	return
}
