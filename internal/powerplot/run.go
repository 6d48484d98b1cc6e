package powerplot

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/euler/internal/config"
	"github.com/san-kum/euler/internal/dataset"
)

const (
	previewWidth  = 80
	previewHeight = 15
)

// Run loads cfg.Input, echoes it to out and renders cfg.Output. A missing
// input file stops the run before anything is rendered.
func Run(cfg config.PowerPlot, out io.Writer, log *logrus.Logger) error {
	if err := dataset.Check(cfg.Input); err != nil {
		return err
	}
	fmt.Fprintln(out, "File exists")

	values, err := dataset.Load(cfg.Input)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, dataset.Format(values))
	log.WithFields(logrus.Fields{"path": cfg.Input, "count": len(values)}).Debug("values loaded")

	index := dataset.IndexAxis(len(values))
	if err := Render(values, index, FigureFrom(cfg), cfg.Output); err != nil {
		return fmt.Errorf("render %s: %w", cfg.Output, err)
	}
	log.WithFields(logrus.Fields{"path": cfg.Output, "dpi": cfg.DPI}).Info("plot saved")

	if cfg.Preview {
		fmt.Fprintln(out, Preview(values, previewWidth, previewHeight))
	}
	return nil
}
