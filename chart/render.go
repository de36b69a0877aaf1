// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatSVG  = "svg"
)

// Series names shared by both renderers.
const (
	seriesCurve   = "f(x)"
	seriesRoot    = "root"
	seriesBracket = "initial bracket"
)

// Image size of RenderImage.
const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 5 * vg.Inch
)

// ErrUnsupportedFormat is returned for an output format other than html, png or svg.
var ErrUnsupportedFormat = errors.New("chart: unsupported format")

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatHTML, "htm":
		return FormatHTML, nil
	case FormatPNG, FormatSVG:
		return ext, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Render writes d in the given format.
func Render(w io.Writer, title, format string, d Data) error {
	if format == FormatHTML {
		return RenderHTML(w, title, d)
	}

	return RenderImage(w, title, format, d)
}

// RenderHTML writes an interactive line chart of the curve with the root and
// bracket points overlaid as scatter series.
func RenderHTML(w io.Writer, title string, d Data) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("x ∈ [%g, %g]", d.Min, d.Max),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "f(x)", Type: "value", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", XAxisIndex: []int{0}}),
	)

	curve := make([]opts.LineData, len(d.Curve))
	for i, p := range d.Curve {
		curve[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
	}
	line.AddSeries(seriesCurve, curve,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	markers := charts.NewScatter()
	if d.Root != nil {
		markers.AddSeries(seriesRoot, []opts.ScatterData{{
			Value:      []interface{}{d.Root.X, d.Root.Y},
			Symbol:     "diamond",
			SymbolSize: 16,
		}})
	}
	if len(d.Bracket) > 0 {
		items := make([]opts.ScatterData, len(d.Bracket))
		for i, p := range d.Bracket {
			items[i] = opts.ScatterData{Value: []interface{}{p.X, p.Y}, Symbol: "triangle", SymbolSize: 12}
		}
		markers.AddSeries(seriesBracket, items)
	}
	line.Overlap(markers)

	return line.Render(w)
}

// RenderImage writes a static chart in PNG or SVG format.
func RenderImage(w io.Writer, title, format string, d Data) error {
	if format != FormatPNG && format != FormatSVG {
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.X.Min, p.X.Max = d.Min, d.Max
	p.Add(plotter.NewGrid())

	if len(d.Curve) > 0 {
		line, err := plotter.NewLine(toXYs(d.Curve))
		if err != nil {
			return fmt.Errorf("chart: curve: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(seriesCurve, line)
	}
	if len(d.Bracket) > 0 {
		s, err := plotter.NewScatter(toXYs(d.Bracket))
		if err != nil {
			return fmt.Errorf("chart: bracket: %w", err)
		}
		s.GlyphStyle.Shape = draw.TriangleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add(seriesBracket, s)
	}
	if d.Root != nil {
		s, err := plotter.NewScatter(toXYs([]Point{*d.Root}))
		if err != nil {
			return fmt.Errorf("chart: root: %w", err)
		}
		s.GlyphStyle.Shape = draw.PyramidGlyph{}
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add(seriesRoot, s)
	}

	wt, err := p.WriterTo(imageWidth, imageHeight, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

func toXYs(points []Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X, xys[i].Y = p.X, p.Y
	}

	return xys
}
