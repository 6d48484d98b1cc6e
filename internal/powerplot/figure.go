package powerplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/euler/internal/config"
)

// ErrLengthMismatch is returned when index and values differ in length.
var ErrLengthMismatch = errors.New("powerplot: index and values differ in length")

var baseColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Figure describes the output image.
type Figure struct {
	Width, Height vg.Length
	DPI           int
	// MarkerArea is in points squared.
	MarkerArea float64
	Alpha      float64
}

func DefaultFigure() Figure {
	return FigureFrom(config.DefaultConfig().PowerPlot)
}

func FigureFrom(cfg config.PowerPlot) Figure {
	return Figure{
		Width:      vg.Length(cfg.Width) * vg.Inch,
		Height:     vg.Length(cfg.Height) * vg.Inch,
		DPI:        cfg.DPI,
		MarkerArea: cfg.MarkerArea,
		Alpha:      cfg.Alpha,
	}
}

func (f Figure) markerRadius() vg.Length {
	return vg.Points(math.Sqrt(f.MarkerArea) / 2)
}

func (f Figure) markerColor() color.Color {
	a := math.Max(0, math.Min(1, f.Alpha))
	c := baseColor
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Render draws the two plots and writes the PNG to path. Nothing is written
// when the figure cannot be built. Empty input still yields empty axes.
func Render(values, index []uint64, fig Figure, path string) error {
	if len(values) != len(index) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(index), len(values))
	}

	logPlot, err := newPlot(values, index, fig, true)
	if err != nil {
		return err
	}
	linPlot, err := newPlot(values, index, fig, false)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(fig.DPI))
	dc := draw.New(img)

	for row, p := range []*plot.Plot{logPlot, linPlot} {
		p.Draw(square(p, stacked.At(dc, 0, row)))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// stacked lays the log-log plot above the linear one.
var stacked = draw.Tiles{
	Rows: 2,
	Cols: 1,
	PadX: vg.Millimeter,
	PadY: vg.Millimeter * 4,
}

func newPlot(values, index []uint64, fig Figure, logScale bool) (*plot.Plot, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	extend := func(v float64) {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		x, y := float64(index[i]), float64(v)
		if logScale && (x <= 0 || y <= 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		extend(x)
		extend(y)
	}

	first, last, haveDiag := indexRange(index, logScale)
	if haveDiag {
		extend(first)
		extend(last)
	}

	switch {
	case math.IsInf(lo, 1):
		if logScale {
			lo, hi = 1, 10
		} else {
			lo, hi = 0, 1
		}
	case lo == hi && logScale:
		lo, hi = lo/2, hi*2
	case lo == hi:
		lo, hi = lo-1, hi+1
	}

	p := plot.New()
	p.X.Label.Text = "n"
	p.Y.Label.Text = "value"
	if logScale {
		p.Title.Text = "log-log"
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	} else {
		p.Title.Text = "linear"
	}

	if len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = fig.markerRadius()
		scatter.GlyphStyle.Color = fig.markerColor()
		p.Add(scatter)
	}

	if haveDiag {
		diag, err := plotter.NewLine(plotter.XYs{{X: first, Y: first}, {X: last, Y: last}})
		if err != nil {
			return nil, err
		}
		diag.LineStyle.Color = color.Black
		diag.LineStyle.Width = vg.Points(0.5)
		diag.LineStyle.Dashes = []vg.Length{vg.Points(3.7), vg.Points(1.6)}
		p.Add(diag)
	}

	// Equal aspect: both axes span the same range and square() makes the
	// data area square.
	p.X.Min, p.X.Max = lo, hi
	p.Y.Min, p.Y.Max = lo, hi

	return p, nil
}

// indexRange returns the extent of the index, restricted to positive values
// on log axes.
func indexRange(index []uint64, logScale bool) (float64, float64, bool) {
	first, last := math.Inf(1), math.Inf(-1)
	for _, i := range index {
		if logScale && i == 0 {
			continue
		}
		first = math.Min(first, float64(i))
		last = math.Max(last, float64(i))
	}
	return first, last, !math.IsInf(first, 1)
}

// square trims c equally on both sides of its longer dimension so that the
// data area of p is square and centred in c.
func square(p *plot.Plot, c draw.Canvas) draw.Canvas {
	size := p.DataCanvas(c).Rectangle.Size()
	switch {
	case size.X > size.Y:
		inset := (size.X - size.Y) / 2
		return draw.Crop(c, inset, -inset, 0, 0)
	case size.Y > size.X:
		inset := (size.Y - size.X) / 2
		return draw.Crop(c, 0, 0, inset, -inset)
	}
	return c
}
