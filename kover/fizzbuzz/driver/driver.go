package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/tipsbook/go-tips/kover/fizzbuzz"
	"github.com/tipsbook/go-tips/kover/fizzbuzz/tally"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/tipsbook/go-tips/kover/fizzbuzz/driver Classifier

// ErrInvalidRange is returned by Run when the lower bound of the range is
// greater than the upper bound.
var ErrInvalidRange = xerrors.New("invalid range: from must not be greater than to")

// Classifier is implemented by objects that map an integer to a label.
type Classifier interface {
	Calculate(value int) string
}

// Config encapsulates the settings for configuring a Driver.
type Config struct {
	// The classifier to feed values to.
	Classifier Classifier

	// The writer that receives one label per line.
	Output io.Writer

	// An optional tally for recording the kind of each classified value.
	Tally *tally.Tally

	// A clock instance for timing runs. If not specified, the default
	// wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.Classifier == nil {
		err = multierror.Append(err, xerrors.Errorf("classifier has not been provided"))
	}
	if cfg.Output == nil {
		err = multierror.Append(err, xerrors.Errorf("output writer has not been provided"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Driver feeds integers to a Classifier and writes out the returned labels.
type Driver struct {
	cfg Config
}

// New creates a new Driver instance with the specified config.
func New(cfg Config) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("fizzbuzz driver: config validation failed: %w", err)
	}
	return &Driver{cfg: cfg}, nil
}

// Run classifies every value in the inclusive range [from, to]. Calls to Run
// return early with the context error if ctx is cancelled.
func (d *Driver) Run(ctx context.Context, from, to int) error {
	if from > to {
		return xerrors.Errorf("[%d, %d]: %w", from, to, ErrInvalidRange)
	}

	logger := d.cfg.Logger.WithFields(logrus.Fields{
		"run_id": uuid.New().String(),
		"from":   from,
		"to":     to,
	})
	startAt := d.cfg.Clock.Now()

	var count int
	for n := from; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.emit(n); err != nil {
			return err
		}
		count++
		if n == to {
			break
		}
	}

	logger.WithFields(logrus.Fields{
		"classified": count,
		"run_time":   d.cfg.Clock.Now().Sub(startAt).String(),
	}).Info("completed range run")
	return nil
}

// RunLines reads one integer per line from r and classifies it. Blank lines
// are skipped. Lines that cannot be parsed do not abort the run; their
// errors are collected and returned once r has been consumed.
func (d *Driver) RunLines(ctx context.Context, r io.Reader) error {
	logger := d.cfg.Logger.WithField("run_id", uuid.New().String())
	startAt := d.cfg.Clock.Now()

	var (
		lineErrs   error
		lineNum    int
		classified int
		scanner    = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			lineErrs = multierror.Append(lineErrs, xerrors.Errorf("line %d: %w", lineNum, err))
			continue
		}

		if err := d.emit(n); err != nil {
			return err
		}
		classified++
	}
	if err := scanner.Err(); err != nil {
		return xerrors.Errorf("unable to read input: %w", err)
	}

	entry := logger.WithFields(logrus.Fields{
		"lines":      lineNum,
		"classified": classified,
		"run_time":   d.cfg.Clock.Now().Sub(startAt).String(),
	})
	if lineErrs != nil {
		entry.WithField("err", lineErrs).Warn("completed line run with malformed input")
		return lineErrs
	}
	entry.Info("completed line run")
	return nil
}

func (d *Driver) emit(n int) error {
	label := d.cfg.Classifier.Calculate(n)
	if d.cfg.Tally != nil {
		d.cfg.Tally.Observe(fizzbuzz.KindOf(n))
	}
	if _, err := fmt.Fprintln(d.cfg.Output, label); err != nil {
		return xerrors.Errorf("unable to write label for %d: %w", n, err)
	}
	return nil
}
