/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fentec-project/fahe/bench"
	"github.com/fentec-project/fahe/fahe"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "Run trials for a named preset (see 'fahebench list'), or a custom parameter tuple via flags",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRun,
	}

	cmd.Flags().Int("trials", 10, "number of independent trials to run")
	cmd.Flags().String("variant", "fahe1", "scheme variant for a custom tuple: fahe1 or fahe2")
	cmd.Flags().Int("lambda", 0, "custom security parameter (ignored if [preset] is given)")
	cmd.Flags().Int("mmax", 0, "custom maximum message bit-width")
	cmd.Flags().Int("alpha", 0, "custom additivity parameter")
	cmd.Flags().Int("additions", 1, "custom number of additions")
	cmd.Flags().String("csv", "", "write per-trial results as CSV to this path")
	cmd.Flags().String("plot", "", "write an elapsed-time plot (PNG) to this path")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	preset, err := resolvePreset(args)
	if err != nil {
		return err
	}

	reporter := bench.NewReporter(sugar)
	results, err := bench.RunPreset(preset, viper.GetInt("trials"), reporter)
	if err != nil {
		return err
	}

	stats := bench.Summarize(results)
	fmt.Printf("preset=%s trials=%d pass-rate=%.1f%% mean=%.3fms stddev=%.3fms\n",
		preset.Name, stats.N, stats.PassRate*100, stats.MeanMillis, stats.StdDevMs)
	bench.WriteTable(os.Stdout, results)

	if csvPath := viper.GetString("csv"); csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := bench.WriteCSV(f, results); err != nil {
			return err
		}
	}

	if plotPath := viper.GetString("plot"); plotPath != "" {
		if err := bench.PlotElapsed(results, preset.Name, plotPath); err != nil {
			return err
		}
	}

	return nil
}

func resolvePreset(args []string) (bench.Preset, error) {
	if len(args) == 1 {
		preset, ok := bench.PresetByName(args[0])
		if !ok {
			return bench.Preset{}, fmt.Errorf("unknown preset %q (see 'fahebench list')", args[0])
		}
		return preset, nil
	}

	variant := fahe.FAHE1
	if viper.GetString("variant") == "fahe2" {
		variant = fahe.FAHE2
	}

	return bench.Preset{
		Name:         "custom",
		Variant:      variant,
		Lambda:       viper.GetInt("lambda"),
		MMax:         viper.GetInt("mmax"),
		Alpha:        viper.GetInt("alpha"),
		MsgSize:      viper.GetInt("mmax"),
		NumAdditions: viper.GetInt("additions"),
		Message:      1,
	}, nil
}
