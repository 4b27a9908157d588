// Package config loads the immutable settings of the viewer and the
// exporter from defaults, an optional config file and command line flags.
package config

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"plotnav/internal/axis"
	"plotnav/internal/errs"
	"plotnav/internal/plot"
	"plotnav/internal/shape"
)

// Config is read once at startup and passed by value afterwards.
type Config struct {
	Shape      string  `mapstructure:"shape"`
	BoxWidth   float64 `mapstructure:"box-width"`
	BarWidth   float64 `mapstructure:"bar-width"`
	MarkerSize float64 `mapstructure:"marker-size"`

	TickSpacing float64 `mapstructure:"tick-spacing"`
	MinorTicks  int     `mapstructure:"minor-ticks"`
	TickLength  float64 `mapstructure:"tick-length"`

	InsetTop    float64 `mapstructure:"inset-top"`
	InsetRight  float64 `mapstructure:"inset-right"`
	InsetBottom float64 `mapstructure:"inset-bottom"`
	InsetLeft   float64 `mapstructure:"inset-left"`

	Line           bool    `mapstructure:"line"`
	LineGap        float64 `mapstructure:"line-gap"`
	LineGapRounded bool    `mapstructure:"line-gap-rounded"`

	Legend            bool   `mapstructure:"legend"`
	LegendOrientation string `mapstructure:"legend-orientation"`

	ZoomStep float64 `mapstructure:"zoom-step"`
	ZoomMin  float64 `mapstructure:"zoom-min"`
	ZoomMax  float64 `mapstructure:"zoom-max"`

	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
}

// Default returns the built-in settings.
func Default() Config {
	p := plot.DefaultConfig()
	return Config{
		Shape:       p.Shape.Kind,
		BoxWidth:    p.Shape.BoxWidth,
		BarWidth:    p.Shape.BarWidth,
		MarkerSize:  p.Shape.MarkerSize,
		TickSpacing: p.YTicks.Spacing,
		MinorTicks:  p.YTicks.MinorCount,
		TickLength:  p.TickLength,
		InsetTop:    p.Insets.Top,
		InsetRight:  p.Insets.Right,
		InsetBottom: p.Insets.Bottom,
		InsetLeft:   p.Insets.Left,

		Line:              p.Connect,
		LineGap:           p.Line.Gap,
		LineGapRounded:    p.Line.Rounded,
		Legend:            p.Legend.Show,
		LegendOrientation: orientationNames[p.Legend.Orientation],

		ZoomStep: 1.25,
		ZoomMin:  0.1,
		ZoomMax:  50,
		Width:    640,
		Height:   480,
		LogLevel: "info",
	}
}

// Flags registers one flag per key, defaulting to Default().
func Flags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("shape", d.Shape, "Mark drawn per column: box, point or bar")
	fs.Float64("box-width", d.BoxWidth, "Box width in x units")
	fs.Float64("bar-width", d.BarWidth, "Whisker bar width relative to the box")
	fs.Float64("marker-size", d.MarkerSize, "Point marker size")
	fs.Float64("tick-spacing", d.TickSpacing, "Y tick spacing, 0 picks one automatically")
	fs.Int("minor-ticks", d.MinorTicks, "Minor ticks between two major y ticks")
	fs.Float64("tick-length", d.TickLength, "Major tick length")
	fs.Float64("inset-top", d.InsetTop, "Margin above the plot area")
	fs.Float64("inset-right", d.InsetRight, "Margin right of the plot area")
	fs.Float64("inset-bottom", d.InsetBottom, "Margin below the plot area")
	fs.Float64("inset-left", d.InsetLeft, "Margin left of the plot area")
	fs.Bool("line", d.Line, "Connect the centers of consecutive marks")
	fs.Float64("line-gap", d.LineGap, "Free space kept around each connected center")
	fs.Bool("line-gap-rounded", d.LineGapRounded, "Use round instead of square line gaps")
	fs.Bool("legend", d.Legend, "Show the legend")
	fs.String("legend-orientation", d.LegendOrientation, "Legend item layout: vertical or horizontal")
	fs.Float64("zoom-step", d.ZoomStep, "Zoom factor per key press or wheel step")
	fs.Float64("zoom-min", d.ZoomMin, "Smallest zoom the viewer allows")
	fs.Float64("zoom-max", d.ZoomMax, "Largest zoom the viewer allows")
	fs.Int("width", d.Width, "Export width in pixels")
	fs.Int("height", d.Height, "Export height in pixels")
	fs.String("log-level", d.LogLevel, "Log level: debug, info, warning, error")
	fs.String("log-file", d.LogFile, "Write log messages to this file")
}

// SetDefaults installs Default() into v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("shape", d.Shape)
	v.SetDefault("box-width", d.BoxWidth)
	v.SetDefault("bar-width", d.BarWidth)
	v.SetDefault("marker-size", d.MarkerSize)
	v.SetDefault("tick-spacing", d.TickSpacing)
	v.SetDefault("minor-ticks", d.MinorTicks)
	v.SetDefault("tick-length", d.TickLength)
	v.SetDefault("inset-top", d.InsetTop)
	v.SetDefault("inset-right", d.InsetRight)
	v.SetDefault("inset-bottom", d.InsetBottom)
	v.SetDefault("inset-left", d.InsetLeft)
	v.SetDefault("line", d.Line)
	v.SetDefault("line-gap", d.LineGap)
	v.SetDefault("line-gap-rounded", d.LineGapRounded)
	v.SetDefault("legend", d.Legend)
	v.SetDefault("legend-orientation", d.LegendOrientation)
	v.SetDefault("zoom-step", d.ZoomStep)
	v.SetDefault("zoom-min", d.ZoomMin)
	v.SetDefault("zoom-max", d.ZoomMax)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-file", d.LogFile)
}

// Load reads file into v when file is not empty, then decodes and
// validates the merged settings. The file type follows its extension and
// defaults to TOML.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	if file != "" {
		ext := strings.TrimPrefix(filepath.Ext(file), ".")
		if ext == "" {
			ext = "toml"
		}
		v.SetConfigType(ext)
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", file)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every value against its allowed range.
func (c Config) Validate() error {
	if _, err := shape.New(c.ShapeConfig()); err != nil {
		return err
	}
	if c.MinorTicks < 0 {
		return errs.Invalid("minor-ticks must not be negative, got %d", c.MinorTicks)
	}
	if c.TickSpacing < 0 || math.IsNaN(c.TickSpacing) {
		return errs.Invalid("tick-spacing must not be negative, got %v", c.TickSpacing)
	}
	for name, v := range map[string]float64{
		"inset-top":    c.InsetTop,
		"inset-right":  c.InsetRight,
		"inset-bottom": c.InsetBottom,
		"inset-left":   c.InsetLeft,
		"tick-length":  c.TickLength,
		"line-gap":     c.LineGap,
	} {
		if v < 0 || math.IsNaN(v) {
			return errs.Invalid("%s must not be negative, got %v", name, v)
		}
	}
	if _, ok := orientations[c.LegendOrientation]; !ok {
		return errs.Invalid("legend-orientation %q", c.LegendOrientation)
	}
	if !(c.ZoomStep > 1) {
		return errs.Invalid("zoom-step must be above 1, got %v", c.ZoomStep)
	}
	if !(c.ZoomMin > 0) || c.ZoomMax < c.ZoomMin {
		return errs.Invalid("zoom range [%v, %v]", c.ZoomMin, c.ZoomMax)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errs.Invalid("size %dx%d", c.Width, c.Height)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errs.Invalid("log-level %q", c.LogLevel)
	}
	return nil
}

// ShapeConfig returns the mark settings.
func (c Config) ShapeConfig() shape.Config {
	return shape.Config{
		Kind:       c.Shape,
		BoxWidth:   c.BoxWidth,
		BarWidth:   c.BarWidth,
		MarkerSize: c.MarkerSize,
		Columns:    shape.DefaultColumns(),
	}
}

// Plot returns the plot settings.
func (c Config) Plot() plot.Config {
	legend := plot.DefaultLegendConfig()
	legend.Show = c.Legend
	legend.Orientation = orientations[c.LegendOrientation]
	return plot.Config{
		Shape:      c.ShapeConfig(),
		YTicks:     axis.TickConfig{Spacing: c.TickSpacing, MinorCount: c.MinorTicks},
		Insets:     plot.Insets{Top: c.InsetTop, Right: c.InsetRight, Bottom: c.InsetBottom, Left: c.InsetLeft},
		TickLength: c.TickLength,
		Connect:    c.Line,
		Line:       shape.LineConfig{Gap: c.LineGap, Rounded: c.LineGapRounded},
		Legend:     legend,
	}
}

var orientations = map[string]plot.Orientation{
	"vertical":   plot.Vertical,
	"horizontal": plot.Horizontal,
}

var orientationNames = map[plot.Orientation]string{
	plot.Vertical:   "vertical",
	plot.Horizontal: "horizontal",
}

// Level returns the parsed log level. Validate has already checked it.
func (c Config) Level() logrus.Level {
	l, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
