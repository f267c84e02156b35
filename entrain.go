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

// EntrainmentPolicy determines how the effective entrainment rate used
// in the lapse-rate calculation varies with height. The policy is fixed
// for a whole integration.
type EntrainmentPolicy int

const (
	// ConstEntrainment uses the base entrainment rate unchanged at
	// every level.
	ConstEntrainment EntrainmentPolicy = iota

	// InverseHeightEntrainment scales the base entrainment rate by
	// 1000/z, where z is the current height [m].
	InverseHeightEntrainment

	// GammaEntrainment scales the base entrainment rate by the
	// precipitation efficiency divided by a reference heating ratio γ
	// calculated once from the base state.
	GammaEntrainment
)

// ParseEntrainmentPolicy converts a policy name to an
// EntrainmentPolicy. Valid names are "const", "invz", and "gamma".
func ParseEntrainmentPolicy(name string) (EntrainmentPolicy, error) {
	switch name {
	case "const":
		return ConstEntrainment, nil
	case "invz":
		return InverseHeightEntrainment, nil
	case "gamma":
		return GammaEntrainment, nil
	}
	return 0, &ConfigError{fmt.Sprintf("unknown entrainment policy '%s'; valid options are const, invz, and gamma", name)}
}

func (p EntrainmentPolicy) String() string {
	switch p {
	case ConstEntrainment:
		return "const"
	case InverseHeightEntrainment:
		return "invz"
	case GammaEntrainment:
		return "gamma"
	}
	return fmt.Sprintf("EntrainmentPolicy(%d)", int(p))
}

// An entrainer calculates the effective entrainment rate for each
// column at a given height under a fixed policy.
type entrainer struct {
	policy   EntrainmentPolicy
	base, pe []float64
	gammaRef []float64
}

// newEntrainer prepares the effective-entrainment calculation,
// rejecting unknown policies before any integration takes place. For
// GammaEntrainment, the reference γ is calculated here from the base
// state with the baseline evaluator and held fixed for the whole
// integration; it is deliberately not re-evaluated as the profile
// evolves.
func newEntrainer(policy EntrainmentPolicy, base, pe []float64, lapse LapseRater, baseT, baseP []float64) (*entrainer, error) {
	e := &entrainer{policy: policy, base: base, pe: pe}
	switch policy {
	case ConstEntrainment, InverseHeightEntrainment:
	case GammaEntrainment:
		n := len(base)
		dry := make([]float64, n)
		moist := make([]float64, n)
		rh := make([]float64, n)
		e.gammaRef = make([]float64, n)
		lapse.Lapse(baseT, baseP, base, pe, dry, moist, rh, e.gammaRef)
	default:
		return nil, &ConfigError{fmt.Sprintf("unknown entrainment policy %d", int(policy))}
	}
	return e, nil
}

// effective stores the effective entrainment rate [1/m] at height z for
// every column in dst.
func (e *entrainer) effective(z float64, dst []float64) {
	switch e.policy {
	case ConstEntrainment:
		copy(dst, e.base)
	case InverseHeightEntrainment:
		for i, b := range e.base {
			dst[i] = b * 1000. / z
		}
	case GammaEntrainment:
		for i, b := range e.base {
			dst[i] = b * e.pe[i] / e.gammaRef[i]
		}
	}
}
