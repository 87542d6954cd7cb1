// Package report renders run histories as HTML charts.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders history, one bar per generation, as a standalone HTML
// page.
func WriteChart(w io.Writer, title, subtitle string, history []int) error {
	x := make([]string, len(history))
	y := make([]opts.BarData, len(history))
	for gen, v := range history {
		x[gen] = strconv.Itoa(gen)
		y[gen] = opts.BarData{Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "100%", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "generation", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	bar.SetXAxis(x).
		AddSeries("count", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(len(history) <= 40), Position: "top"}),
		)
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	return nil
}
