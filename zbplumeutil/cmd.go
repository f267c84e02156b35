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

// Package zbplumeutil provides the command-line interface for the
// zbplume plume model.
package zbplumeutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/zbplume"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})

	Cfg = viper.New()

	// Options are the configuration options available to zbplume.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the location of a TOML scenario file
              describing the columns to calculate profiles for. If no
              scenario file is given, a single column is built from the
              surface-state flags below.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "bottom",
			usage: `
              bottom specifies the lower bound [m] of the profile.`,
			defaultVal: 0.,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "top",
			usage: `
              top specifies the upper bound [m] of the profile. Levels
              are spaced 50 m apart, with a shorter final step if the
              bounds are not a multiple of 50 m apart.`,
			defaultVal: 15000.,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "temperature",
			usage: `
              temperature specifies the plume base temperature [K].`,
			shorthand:  "t",
			defaultVal: 300.,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "pressure",
			usage: `
              pressure specifies the base pressure [Pa]. Pressure above
              the base level is derived hydrostatically.`,
			shorthand:  "p",
			defaultVal: 101325.,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "entrainment",
			usage: `
              entrainment specifies the base entrainment rate [1/m].`,
			shorthand:  "e",
			defaultVal: 1.e-4,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "pe",
			usage: `
              pe specifies the precipitation efficiency (0–1).`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "policy",
			usage: `
              policy specifies how the effective entrainment rate varies
              with height. Valid options are const, invz, and gamma.`,
			defaultVal: "const",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the path the CSV profile table should be
              written to. The default is standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(profileCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "zbplume",
	Short: "A zero-buoyancy plume model for vertical atmospheric profiles.",
	Long: `zbplume calculates vertical profiles of temperature, pressure, and
relative humidity for batches of atmospheric columns using a
zero-buoyancy entraining-plume parameterization.
Use the subcommands specified below to access the model functionality.

Configuration can be changed by providing a scenario file (using the
--config flag) or by using command-line arguments.`,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of zbplume.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zbplume v%s\n", zbplume.Version)
	},
	DisableAutoGenTag: true,
}

// profileCmd is a command that calculates vertical profiles.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Calculate vertical plume profiles.",
	Long: `profile integrates the plume equations upward from the given surface
state and writes the resulting profiles as a CSV table. If a scenario
file is supplied with --config, columns are taken from it; otherwise a
single column is built from the command-line flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromConfig(Cfg)
		if err != nil {
			return err
		}
		return RunProfile(scenario)
	},
	DisableAutoGenTag: true,
}
