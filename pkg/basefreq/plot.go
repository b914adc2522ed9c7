package basefreq

import (
	"fmt"
	"image/color"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// one color per base, A T C G N
var lineColors = []color.RGBA{
	{B: 255, A: 255},
	{R: 255, G: 165, A: 255},
	{G: 128, A: 255},
	{R: 255, A: 255},
	{R: 128, B: 128, A: 255},
}

// PlotLine renders the full-range static chart. With addPercent every 5th
// position gets integer-rounded percentage labels below the X axis, colored
// like the matching line.
func (pf *PosFreq) PlotLine(path string, addPercent bool) error {
	var p = pf.newPlot(fmt.Sprintf("Base Frequencies in %s (First %d Bases)", pf.Name, pf.NumBases))
	p.X.Tick.Marker = tickEvery(pf.Pos, 5)

	if addPercent {
		if err := pf.addPercentLabels(p); err != nil {
			return err
		}
	}
	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// PlotRange renders the zoomed sub-range chart, start and end 1-based.
func (pf *PosFreq) PlotRange(path string, start, end int) error {
	var p = pf.newPlot(fmt.Sprintf("Base Frequencies at Specific Positions from %d to %d in %s", start, end, pf.Name))
	p.X.Tick.Marker = tickEvery(pf.Pos, 1)
	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

func (pf *PosFreq) newPlot(title string) *plot.Plot {
	var p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Base Position"
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	for j, base := range Bases {
		var points = make(plotter.XYs, pf.NumBases)
		for i := 0; i < pf.NumBases; i++ {
			points[i] = plotter.XY{X: float64(pf.Pos[i]), Y: pf.Freq[j][i]}
		}
		var line = simpleUtil.HandleError(plotter.NewLine(points))
		line.Color = lineColors[j]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(string(base), line)
	}
	p.Legend.Top = true
	return p
}

func (pf *PosFreq) addPercentLabels(p *plot.Plot) error {
	var (
		xys    plotter.XYs
		labels []string
		colors []color.RGBA
	)
	for i := 0; i < pf.NumBases; i++ {
		if (i+1)%5 != 0 {
			continue
		}
		for j := range Bases {
			xys = append(xys, plotter.XY{X: float64(pf.Pos[i]), Y: -0.08 - 0.06*float64(j)})
			labels = append(labels, fmt.Sprintf("%.0f%%", pf.Freq[j][i]*100))
			colors = append(colors, lineColors[j])
		}
	}

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	for k := range lbls.TextStyle {
		lbls.TextStyle[k].Color = colors[k]
		lbls.TextStyle[k].XAlign = text.XCenter
		lbls.TextStyle[k].YAlign = text.YTop
	}
	p.Add(lbls)
	// leave room under the axis for the label rows
	p.Y.Min = -0.42
	p.Y.Max = 1
	return nil
}

func tickEvery(pos []int, step int) plot.ConstantTicks {
	var ticks []plot.Tick
	for i, p := range pos {
		if i%step == 0 {
			ticks = append(ticks, plot.Tick{Value: float64(p), Label: fmt.Sprint(p)})
		}
	}
	return ticks
}

// PlotHTML renders the interactive chart.
func (pf *PosFreq) PlotHTML(path string) {
	var (
		line   = charts.NewLine()
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Base Frequencies",
			Subtitle: fmt.Sprintf("in %s (First %d Bases)", pf.Name, pf.NumBases),
		}))

	line.SetXAxis(pf.Pos).
		AddSeries("A", generateLineItems(pf.Freq[0])).
		AddSeries("T", generateLineItems(pf.Freq[1])).
		AddSeries("C", generateLineItems(pf.Freq[2])).
		AddSeries("G", generateLineItems(pf.Freq[3])).
		AddSeries("N", generateLineItems(pf.Freq[4]))
	simpleUtil.CheckErr(line.Render(output))
}

func generateLineItems(vs []float64) []opts.LineData {
	var items = make([]opts.LineData, 0)
	for _, v := range vs {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
