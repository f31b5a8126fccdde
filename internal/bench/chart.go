package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteChart saves a bar chart of mean advances per algorithm to file. The
// image format follows the file extension.
func WriteChart(summaries []Summary, title, file string) error {
	if len(summaries) == 0 {
		return fmt.Errorf("bench: no summaries to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "mean advances"

	values := make(plotter.Values, len(summaries))
	names := make([]string, len(summaries))
	for i, s := range summaries {
		values[i] = s.MeanAdvances
		names[i] = s.Algorithm
	}
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("bench: bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("bench: save %s: %w", file, err)
	}
	return nil
}
