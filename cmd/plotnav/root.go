package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plotnav/internal/config"
	"plotnav/internal/tui"
)

// app carries what the persistent pre-run prepares for every command.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *logrus.Logger
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "plotnav [file.csv]",
		Short: "Terminal box plot viewer with pan, zoom and hit testing",
		Long: `plotnav summarizes every column of a CSV file into a box-and-whisker
mark and shows the plot in the terminal. Drag or use the arrow keys to pan,
scroll or press +/- to zoom, click a box to inspect it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, cmd != cmd.Root())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runViewer(args)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Configuration file (TOML or YAML)")
	config.Flags(root.PersistentFlags())
	root.AddCommand(newExportCmd(a))
	return root
}

// init loads the configuration and sets up logging. The viewer owns the
// terminal, so without a log file its messages are dropped; other commands
// log to stderr.
func (a *app) init(cmd *cobra.Command, toStderr bool) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logrus.New()
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.log.SetLevel(cfg.Level())
	var out io.Writer = io.Discard
	if toStderr {
		out = os.Stderr
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		a.logFile = f
		out = f
	}
	a.log.SetOutput(out)
	a.log.WithFields(logrus.Fields{
		"config": v.ConfigFileUsed(),
		"shape":  cfg.Shape,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func (a *app) runViewer(args []string) error {
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(a.cfg, a.log, args[0])
	} else {
		m = tui.New(a.cfg, a.log)
	}
	a.log.Info("viewer started")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return errors.Wrap(err, "run viewer")
	}
	return nil
}
