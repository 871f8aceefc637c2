package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
	"github.com/vancomm/minesweeper-cli/internal/tui"
)

var (
	log = logrus.New()

	configPath string
	rows       int
	cols       int
	mineCount  int
	seed       uint64
	useTUI     bool
)

func init() {
	const (
		defaultConfigPath = "config.yml"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.IntVar(&rows, "rows", 0, "board rows")
	flag.IntVar(&cols, "cols", 0, "board columns")
	flag.IntVar(&mineCount, "mines", 0, "mine count")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 = fresh board every run)")
	flag.BoolVar(&useTUI, "tui", false, "play in the full-screen interface")
}

// applyFlags lets explicitly passed flags win over file and env values.
func applyFlags(conf *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			conf.Rows = rows
		case "cols":
			conf.Cols = cols
		case "mines":
			conf.Mines = mineCount
		case "seed":
			conf.Seed = seed
		case "tui":
			conf.TUI = useTUI
		}
	})
}

// setupLogging sends all log output to a rotating file; both frontends own
// the terminal, so nothing may write to stdout behind their back.
func setupLogging(conf *config.Config) {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(io.Discard)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   conf.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Warn("unable to open log file, logging to stderr")
		return
	}
	log.AddHook(hook)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	flag.Parse()

	conf, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(conf)
	setupLogging(conf)

	log.WithFields(logrus.Fields{
		"rows": conf.Rows, "cols": conf.Cols, "mines": conf.Mines,
		"seed": conf.Seed, "tui": conf.TUI,
	}).Info("starting up")

	r := newRand(conf.Seed)
	newBoard := func() (*mines.Board, error) {
		return mines.NewBoard(conf.Rows, conf.Cols, conf.Mines, r)
	}

	board, err := newBoard()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot start game:", err)
		os.Exit(1)
	}

	if conf.TUI {
		if err := tui.Run(board, newBoard, log.WithField("component", "tui")); err != nil {
			log.WithError(err).Error("tui failed")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	s := session.New(board, os.Stdin, os.Stdout, log.WithField("component", "session"))
	result := s.Run()
	log.WithField("result", result).Info("session over")
}
