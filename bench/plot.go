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
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotElapsed renders a line-and-points chart of elapsed trial time against
// trial index to path, replacing original_source/plotting.py's matplotlib
// call with a native Go plot.
func PlotElapsed(results []TrialResult, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "trial index"
	p.Y.Label.Text = "elapsed (ms)"

	pts := make(plotter.XYs, len(results))
	for i, r := range results {
		pts[i].X = float64(i)
		pts[i].Y = float64(r.Elapsed.Microseconds()) / 1000.0
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points)
	p.Legend.Add("elapsed", line, points)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// PlotCiphertextSize renders ciphertext bit-length against the additivity
// bit-width alpha used to produce it, mirroring
// original_source/plotting.py's bit-width-vs-size sweep.
func PlotCiphertextSize(alphas []int, bitLens []int, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "alpha"
	p.Y.Label.Text = "ciphertext bits"

	pts := make(plotter.XYs, len(alphas))
	for i := range alphas {
		pts[i].X = float64(alphas[i])
		pts[i].Y = float64(bitLens[i])
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points)
	p.Legend.Add("gamma", line, points)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
