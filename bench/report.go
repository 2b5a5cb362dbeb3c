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

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// WriteCSV writes one row per TrialResult (original_source/data_collection.py's
// role), columns: preset, pass, elapsed_ns.
func WriteCSV(w io.Writer, results []TrialResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"preset", "pass", "elapsed_ns"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Preset,
			strconv.FormatBool(r.Pass),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}

// Stats summarizes elapsed-time distribution across a batch of results
// (original_source/analysis.py's role), using gonum/stat for mean/stddev.
type Stats struct {
	N          int
	PassRate   float64
	MeanMillis float64
	StdDevMs   float64
}

// Summarize computes Stats over results.
func Summarize(results []TrialResult) Stats {
	if len(results) == 0 {
		return Stats{}
	}

	millis := make([]float64, len(results))
	passed := 0
	for i, r := range results {
		millis[i] = float64(r.Elapsed.Microseconds()) / 1000.0
		if r.Pass {
			passed++
		}
	}

	mean := stat.Mean(millis, nil)
	stddev := stat.StdDev(millis, nil)

	return Stats{
		N:          len(results),
		PassRate:   float64(passed) / float64(len(results)),
		MeanMillis: mean,
		StdDevMs:   stddev,
	}
}

// WriteTable renders a human-readable per-preset summary table to w,
// grouping results by preset name.
func WriteTable(w io.Writer, results []TrialResult) {
	byPreset := map[string][]TrialResult{}
	order := make([]string, 0)
	for _, r := range results {
		if _, ok := byPreset[r.Preset]; !ok {
			order = append(order, r.Preset)
		}
		byPreset[r.Preset] = append(byPreset[r.Preset], r)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Preset", "Trials", "Pass rate", "Mean (ms)", "StdDev (ms)"})

	for _, name := range order {
		s := Summarize(byPreset[name])
		table.Append([]string{
			name,
			strconv.Itoa(s.N),
			fmt.Sprintf("%.1f%%", s.PassRate*100),
			fmt.Sprintf("%.3f", s.MeanMillis),
			fmt.Sprintf("%.3f", s.StdDevMs),
		})
	}

	table.Render()
}
