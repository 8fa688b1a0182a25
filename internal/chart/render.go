package chart

import (
	"errors"
	"image/color"
	"math"

	"feedbackdesk/internal/sentiment"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	Title  = "Sentiment Trends"
	XLabel = "Date"
	YLabel = "Number of Reviews"

	width  = 8 * vg.Inch
	height = 5 * vg.Inch
	// rough drawable width once axes and legend are laid out
	plotArea = 6.5 * 72
)

var errNothingToDraw = errors.New("chart: nothing to draw")

var palette = map[sentiment.Sentiment]color.Color{
	sentiment.Positive: color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	sentiment.Negative: color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	sentiment.Neutral:  color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}

// Render draws c as grouped bars, one group per day, and saves it to path.
// The image format follows the file extension.
func Render(c Counts, path string) error {
	if len(c.Days) == 0 || len(c.Series) == 0 {
		return errNothingToDraw
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Y.Min = 0
	p.Legend.Top = true

	n := len(c.Series)
	barWidth := vg.Length(math.Max(1, plotArea/float64(len(c.Days))*0.8/float64(n)))

	for i, s := range c.Series {
		values := make(plotter.Values, len(s.Counts))
		for j, v := range s.Counts {
			values[j] = float64(v)
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = palette[s.Sentiment]
		bars.Offset = barWidth * vg.Length(float64(i)-float64(n-1)/2)

		p.Add(bars)
		p.Legend.Add(string(s.Sentiment), bars)
	}

	p.NominalX(c.Days...)
	if len(c.Days) > 7 {
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return p.Save(width, height, path)
}
