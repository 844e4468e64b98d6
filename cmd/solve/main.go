package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/patrol-server/internal/patrol"
	"github.com/vancomm/patrol-server/internal/puzzle"
)

var log = logrus.New()

var (
	day       int
	part      int
	inputPath string
	fuel      int
	workers   int
	verbose   bool
)

func init() {
	flag.IntVar(&day, "day", 0, "puzzle day")
	flag.IntVar(&part, "part", 1, "puzzle part")
	flag.StringVar(&inputPath, "input", "-", "input file path, - for stdin")
	flag.IntVar(&fuel, "fuel", 0, "per-trial step budget for the loop search, 0 for exact cycle detection")
	flag.IntVar(&workers, "workers", 0, "concurrent loop search trials, 0 for GOMAXPROCS")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   "logs/solve.log",
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Warn("unable to set up log file rotation: ", err)
		return
	}
	log.AddHook(hook)
}

func readInput() (string, error) {
	if inputPath == "-" {
		buf, err := io.ReadAll(os.Stdin)
		return string(buf), err
	}
	buf, err := os.ReadFile(inputPath)
	return string(buf), err
}

// searchLoops runs the day 6 part 2 obstruction search with a terminal
// progress bar driving off the trial counter.
func searchLoops(input string) (int64, error) {
	area, err := patrol.ParseArea(input)
	if err != nil {
		return 0, err
	}
	candidates := area.Clone().Patrol()

	bar := progressbar.NewOptions(len(candidates),
		progressbar.OptionSetDescription("searching obstructions"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
	)
	defer bar.Finish()

	answer := area.CountLoops(candidates, patrol.SearchConfig{
		Fuel:    fuel,
		Workers: workers,
		Progress: func(done, total int) {
			bar.Set(done)
		},
	})
	return int64(answer), nil
}

func main() {
	flag.Parse()
	setupLogging()

	if !puzzle.Known(day, part) {
		log.Errorf("no solver for day %d part %d, known days: %v", day, part, puzzle.Days())
		os.Exit(2)
	}

	input, err := readInput()
	if err != nil {
		log.Error("unable to read input: ", err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"day":  day,
		"part": part,
	}).Debug("solving")

	start := time.Now()

	var answer int64
	if day == 6 && part == 2 {
		answer, err = searchLoops(input)
	} else {
		answer, err = puzzle.Solve(day, part, input)
	}
	if err != nil {
		log.Error("unable to solve: ", err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"day":      day,
		"part":     part,
		"duration": time.Since(start).String(),
	}).Info("solved")

	fmt.Println(answer)
}
