package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"plotnav/internal/data"
	"plotnav/internal/export"
	"plotnav/internal/geom"
	"plotnav/internal/plot"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.csv> [out.svg]",
		Short: "Write the box plot of a CSV file as SVG",
		Long: `export summarizes the columns of a CSV file and writes the plot as an
SVG document of --width x --height pixels. Without an output path, or with
"-", the document goes to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "-"
			if len(args) > 1 {
				out = args[1]
			}
			return a.export(args[0], out, cmd.OutOrStdout())
		},
	}
}

func (a *app) export(in, out string, stdout io.Writer) (err error) {
	raw, err := data.ReadCSVFile(in)
	if err != nil {
		return err
	}
	box, err := data.BoxData(raw)
	if err != nil {
		return err
	}
	bounds := geom.Rect{W: float64(a.cfg.Width), H: float64(a.cfg.Height)}
	p, err := plot.NewBoxPlot(box, bounds, a.cfg.Plot())
	if err != nil {
		return err
	}
	p.SetTitle(strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)))

	w := stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrapf(err, "create %s", out)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if err := export.WriteSVG(w, p, a.cfg.Width, a.cfg.Height); err != nil {
		return errors.Wrap(err, "write svg")
	}
	a.log.WithFields(logrus.Fields{
		"in":      in,
		"out":     out,
		"columns": raw.ColumnCount(),
		"marks":   len(p.Marks()),
	}).Info("exported")
	return nil
}
