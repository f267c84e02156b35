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

package zbplumeutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/zbplume"
)

// RunProfile calculates vertical profiles for the columns described by
// the scenario and writes them as a CSV table.
func RunProfile(scenario *ScenarioData) error {
	n := len(scenario.Temperature)
	if n == 0 {
		return fmt.Errorf("zbplume: the scenario contains no columns")
	}
	for name, vals := range map[string][]float64{
		"Pressure":         scenario.Pressure,
		"Entrainment":      scenario.Entrainment,
		"PrecipEfficiency": scenario.PrecipEfficiency,
	} {
		if len(vals) != 1 && len(vals) != n {
			return fmt.Errorf("zbplume: %s must hold either one value or one value per column; have %d values for %d columns",
				name, len(vals), n)
		}
	}
	policy, err := zbplume.ParseEntrainmentPolicy(scenario.Policy)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"columns": n,
		"policy":  policy.String(),
	}).Info("calculating plume profiles")

	p := &zbplume.Plume{
		Heights:          scenario.Heights,
		Temperature:      columnArray(scenario.Temperature, n),
		Pressure:         columnArray(scenario.Pressure, n),
		Entrainment:      columnArray(scenario.Entrainment, n),
		PrecipEfficiency: columnArray(scenario.PrecipEfficiency, n),
		Policy:           policy,
	}
	profile, err := p.Profile()
	if err != nil {
		return err
	}
	logger.WithField("levels", len(profile.Height)).Info("integration finished")

	w := io.Writer(os.Stdout)
	if scenario.OutputFile != "" {
		f, err := os.Create(scenario.OutputFile)
		if err != nil {
			return fmt.Errorf("zbplume: problem creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	return writeCSV(w, profile)
}

// columnArray expands per-column scenario values into a batch-shaped
// array, repeating a single value for every column.
func columnArray(vals []float64, n int) *sparse.DenseArray {
	a := sparse.ZerosDense(n)
	for i := 0; i < n; i++ {
		if len(vals) == 1 {
			a.Elements[i] = vals[0]
		} else if i < len(vals) {
			a.Elements[i] = vals[i]
		}
	}
	return a
}

// writeCSV writes one row per column and height level.
func writeCSV(w io.Writer, profile *zbplume.Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"height_m", "column", "temperature_K",
		"moist_temperature_K", "pressure_Pa", "relative_humidity", "gamma"}); err != nil {
		return err
	}
	n := len(profile.Temperature.Elements) / len(profile.Height)
	for lev, z := range profile.Height {
		for col := 0; col < n; col++ {
			row := []string{
				strconv.FormatFloat(z, 'g', -1, 64),
				strconv.Itoa(col),
				strconv.FormatFloat(profile.Temperature.Get(lev, col), 'g', -1, 64),
				strconv.FormatFloat(profile.MoistTemperature.Get(lev, col), 'g', -1, 64),
				strconv.FormatFloat(profile.Pressure.Get(lev, col), 'g', -1, 64),
				strconv.FormatFloat(profile.RelativeHumidity.Get(lev, col), 'g', -1, 64),
				strconv.FormatFloat(profile.LapseDiagnostic.Get(lev, col), 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
