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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// ScenarioData holds information about a batch of columns to calculate
// profiles for.
type ScenarioData struct {
	// Heights specifies the vertical levels [m]: either a (bottom, top)
	// bound pair, in which case levels are generated every 50 m, or an
	// explicit increasing list of three or more levels.
	Heights []float64

	// Temperature is the base temperature [K], one value per column.
	Temperature []float64

	// Pressure is the base pressure [Pa]: either one value to be shared
	// by every column or one value per column.
	Pressure []float64

	// Entrainment is the base entrainment rate [1/m]: either one value
	// to be shared by every column or one value per column.
	Entrainment []float64

	// PrecipEfficiency is the precipitation efficiency (0–1): either
	// one value to be shared by every column or one value per column.
	PrecipEfficiency []float64

	// Policy is the entrainment policy name: const, invz, or gamma.
	Policy string

	// OutputFile is the path the CSV profile table should be written
	// to. It can include environment variables. If it is empty, the
	// table is written to standard output.
	OutputFile string
}

// ReadScenarioFile reads and parses a TOML scenario file.
func ReadScenarioFile(filename string) (*ScenarioData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("zbplume: the scenario file \"%s\" could not be opened: %v", filename, err)
	}
	defer f.Close()
	scenario := &ScenarioData{Policy: "const"}
	if _, err := toml.DecodeReader(f, scenario); err != nil {
		return nil, fmt.Errorf("zbplume: problem parsing scenario file: %v", err)
	}
	scenario.OutputFile = os.ExpandEnv(scenario.OutputFile)
	return scenario, nil
}

// scenarioFromConfig builds a scenario from the configuration, reading
// the scenario file if one was given and otherwise building a single
// column from the command-line flags.
func scenarioFromConfig(cfg *viper.Viper) (*ScenarioData, error) {
	if file := cfg.GetString("config"); file != "" {
		return ReadScenarioFile(file)
	}
	var vals [4]float64
	for i, name := range []string{"temperature", "pressure", "entrainment", "pe"} {
		v, err := cast.ToFloat64E(cfg.Get(name))
		if err != nil {
			return nil, fmt.Errorf("zbplume: problem reading option %s: %v", name, err)
		}
		vals[i] = v
	}
	return &ScenarioData{
		Heights:          []float64{cfg.GetFloat64("bottom"), cfg.GetFloat64("top")},
		Temperature:      []float64{vals[0]},
		Pressure:         []float64{vals[1]},
		Entrainment:      []float64{vals[2]},
		PrecipEfficiency: []float64{vals[3]},
		Policy:           cfg.GetString("policy"),
		OutputFile:       cfg.GetString("output"),
	}, nil
}
