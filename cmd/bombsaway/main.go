package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/adventure"
	"github.com/vancomm/bombsaway/internal/board"
	"github.com/vancomm/bombsaway/internal/command"
	"github.com/vancomm/bombsaway/internal/config"
)

var (
	log = logrus.New()

	params    string
	preset    string
	seed      uint64
	logFile   string
	games     int
	workers   int
	class     string
	verbose   bool
	loggers   = []*logrus.Logger{log, board.Log, abilities.Log, adventure.Log, command.Log}
	usageText = `usage: bombsaway [flags] [play|simulate|adventure]

  play       read commands from stdin, write one JSON result per line
  simulate   autoplay -games boards and report the win rate
  adventure  autoplay -games adventure runs and report how far they got

flags:
`
)

func init() {
	flag.StringVar(&params, "params", "", `board params, e.g. "width=9&height=9&bombs=10&lives=1"`)
	flag.StringVar(&preset, "preset", "classic", "named board preset, used when -params is empty")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 = BOMBSAWAY_SEED or random)")
	flag.StringVar(&logFile, "log-file", "", "also write logs to this rotated file (default LOG_FILE)")
	flag.IntVar(&games, "games", 100, "number of games to autoplay")
	flag.IntVar(&workers, "workers", 4, "games autoplayed at once")
	flag.StringVar(&class, "class", string(adventure.Investigator), "adventure class")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() || verbose {
		logLevel = logrus.DebugLevel
	}
	for _, l := range loggers {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		l.SetOutput(os.Stderr)
	}

	lf, err := logFileConfig(logFile)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if lf == nil {
		log.Debug("file logging disabled")
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   lf.Filename,
		MaxSize:    lf.MaxSize,
		MaxBackups: lf.MaxBackups,
		MaxAge:     lf.MaxAge,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", lf.Filename, err)
	}
	for _, l := range loggers {
		l.AddHook(hook)
	}
	return nil
}

// logFileConfig returns nil without an error only when no log file was asked
// for, either by name or through LOG_FILE.
func logFileConfig(name string) (*config.LogFile, error) {
	if name != "" {
		return config.NewLogFileAt(name)
	}
	lf, err := config.NewLogFile()
	if errors.Is(err, config.ErrUnset) {
		return nil, nil
	}
	return lf, err
}

func boardParams() (config.BoardParams, error) {
	if params != "" {
		return config.ParseBoardQuery(params)
	}
	return config.Preset(preset)
}

func baseSeed() uint64 {
	if seed != 0 {
		return seed
	}
	if s, err := config.Seed(); err == nil {
		return s
	}
	return board.NewRand().Uint64()
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	mode := "play"
	if flag.NArg() > 0 {
		mode = flag.Arg(0)
	}
	s := baseSeed()
	log.WithFields(logrus.Fields{"mode": mode, "seed": s}).Debug("starting up")

	var err error
	switch mode {
	case "play":
		err = play(mainCtx, rand.New(rand.NewPCG(s, 0)))
	case "simulate":
		err = simulate(mainCtx, s)
	case "adventure":
		err = simulateAdventure(mainCtx, s)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("exit reason: %s", err)
	}
}
