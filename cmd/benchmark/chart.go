package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yyyoichi/watermark_maxdwt/internal/benchdb"
)

// renderChart draws apply and decode times per size as an HTML line chart.
func renderChart(source string, timings []*benchdb.Timing, outputPath string) error {
	line := charts.NewLine()

	var (
		xAxisData  []string
		applyData  []opts.LineData
		decodeData []opts.LineData
	)
	for _, t := range timings {
		xAxisData = append(xAxisData, fmt.Sprintf("%dx%d", t.Size, t.Size))
		applyData = append(applyData, opts.LineData{
			Value: t.ApplyMs,
			Name:  fmt.Sprintf("%dx%d: apply=%.0fms recovered=%v", t.Size, t.Size, t.ApplyMs, t.Recovered),
		})
		decodeData = append(decodeData, opts.LineData{
			Value: t.DecodeMs,
			Name:  fmt.Sprintf("%dx%d: decode=%.0fms", t.Size, t.Size, t.DecodeMs),
		})
	}

	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Watermark time by image size",
			Subtitle: source,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Size",
			Type: "category",
			Data: xAxisData,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Time (ms)",
			Type: "value",
			AxisLabel: &opts.AxisLabel{
				Formatter: "{value}ms",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	line.SetXAxis(xAxisData)
	line.AddSeries("Apply", applyData,
		charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}),
	)
	line.AddSeries("Decode", decodeData,
		charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
