/*
 * composition.go, part of grotop
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

// Package chemplot produces plots of the composition of a simulated system.
package chemplot

import (
	"fmt"
	"io"

	"github.com/rmera/grotop/top"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func compositionPlot(ms *top.MoleculesSection, title string) (*plot.Plot, error) {
	if ms == nil {
		panic("chemplot: Given nil data")
	}
	if ms.Len() == 0 {
		return nil, fmt.Errorf("chemplot: no molecules to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Molecules"
	p.Y.Min = 0
	names := make([]string, 0, ms.Len())
	var err error
	ms.Each(func(i int, m top.Molecule) bool {
		var bars *plotter.BarChart
		bars, err = plotter.NewBarChart(plotter.Values{float64(m.Count)}, vg.Points(20))
		if err != nil {
			err = fmt.Errorf("chemplot: entry %d (%s): %w", i, m.Name, err)
			return false
		}
		bars.XMin = float64(i)
		bars.Color = barColor(i, ms.Len())
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		names = append(names, m.Name)
		return true
	})
	if err != nil {
		return nil, err
	}
	p.NominalX(names...)
	return p, nil
}

// CompositionBars plots the number of molecules of each entry in ms, in order,
// as a bar chart, and saves it to filename. The format is taken from the filename extension
// (png, svg, pdf, etc.). It panics if ms is nil.
func CompositionBars(ms *top.MoleculesSection, title, filename string) error {
	p, err := compositionPlot(ms, title)
	if err != nil {
		return err
	}
	//a bit wider for systems with many entries
	width := vg.Length(4+ms.Len()/5) * vg.Inch
	return p.Save(width, 4*vg.Inch, filename)
}

// WriteCompositionBars is like CompositionBars, but writes the plot in the given format to w.
func WriteCompositionBars(ms *top.MoleculesSection, title, format string, w io.Writer) error {
	p, err := compositionPlot(ms, title)
	if err != nil {
		return err
	}
	width := vg.Length(4+ms.Len()/5) * vg.Inch
	wt, err := p.WriterTo(width, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
