package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotnav/internal/errs"
	"plotnav/internal/plot"
	"plotnav/internal/shape"
)

func TestDefaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, plot.DefaultConfig(), c.Plot())
	assert.Equal(t, logrus.InfoLevel, c.Level())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plotnav.toml")
	require.NoError(t, os.WriteFile(file, []byte("shape = \"point\"\nminor-ticks = 4\nzoom-max = 8.0\nlog-level = \"debug\"\n"), 0o644))

	c, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, "point", c.Shape)
	assert.Equal(t, 4, c.MinorTicks)
	assert.Equal(t, 8.0, c.ZoomMax)
	assert.Equal(t, logrus.DebugLevel, c.Level())
	assert.Equal(t, Default().BoxWidth, c.BoxWidth)
	assert.Equal(t, 4, c.Plot().YTicks.MinorCount)
}

func TestLoadYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plotnav.yaml")
	require.NoError(t, os.WriteFile(file, []byte("shape: bar\nbox-width: 0.5\n"), 0o644))

	c, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, "bar", c.Shape)
	assert.Equal(t, 0.5, c.BoxWidth)
}

func TestFlagsOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--shape=bar", "--tick-spacing=2.5"}))

	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))
	c, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "bar", c.Shape)
	assert.Equal(t, 2.5, c.TickSpacing)
	assert.Equal(t, Default().ZoomStep, c.ZoomStep)
}

func TestLineAndLegend(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plotnav.yaml")
	require.NoError(t, os.WriteFile(file, []byte("line: true\nline-gap: 3\nline-gap-rounded: true\nlegend: true\nlegend-orientation: horizontal\n"), 0o644))

	c, err := Load(viper.New(), file)
	require.NoError(t, err)
	p := c.Plot()
	assert.True(t, p.Connect)
	assert.Equal(t, shape.LineConfig{Gap: 3, Rounded: true}, p.Line)
	assert.True(t, p.Legend.Show)
	assert.Equal(t, plot.Horizontal, p.Legend.Orientation)
	assert.Equal(t, plot.DefaultLegendConfig().SymbolSize, p.Legend.SymbolSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"shape":        func(c *Config) { c.Shape = "pie" },
		"bar-width":    func(c *Config) { c.BarWidth = 2 },
		"minor-ticks":  func(c *Config) { c.MinorTicks = -1 },
		"tick-spacing": func(c *Config) { c.TickSpacing = -1 },
		"inset":        func(c *Config) { c.InsetLeft = -3 },
		"zoom-step":    func(c *Config) { c.ZoomStep = 1 },
		"zoom-range":   func(c *Config) { c.ZoomMin, c.ZoomMax = 2, 1 },
		"size":         func(c *Config) { c.Width = 0 },
		"log-level":    func(c *Config) { c.LogLevel = "chatty" },
		"line-gap":     func(c *Config) { c.LineGap = -1 },
		"legend":       func(c *Config) { c.LegendOrientation = "diagonal" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), errs.ErrInvalidParameter)
		})
	}
	assert.NoError(t, Default().Validate())
}
