package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/tipsbook/go-tips/kover/fizzbuzz"
	"github.com/tipsbook/go-tips/kover/fizzbuzz/driver"
	"github.com/tipsbook/go-tips/kover/fizzbuzz/tally"
)

var (
	appName = "fizzbuzz"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	rootLogger.SetOutput(os.Stderr)
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	if err := makeApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp(in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "Label integers by their divisibility by 3 and 5"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "stats",
			EnvVar: "FIZZBUZZ_STATS",
			Usage:  "Print the number of values per label kind after the run",
		},
		cli.StringFlag{
			Name:   "stats-format",
			Value:  "text",
			EnvVar: "FIZZBUZZ_STATS_FORMAT",
			Usage:  "The format used by --stats (text, prom)",
		},
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			EnvVar: "FIZZBUZZ_LOG_LEVEL",
			Usage:  "The log level (debug, info, warn, error)",
		},
	}
	app.Before = func(appCtx *cli.Context) error {
		lvl, err := logrus.ParseLevel(appCtx.String("log-level"))
		if err != nil {
			return xerrors.Errorf("invalid log level: %w", err)
		}
		logger.Logger.SetLevel(lvl)

		if f := appCtx.String("stats-format"); f != "text" && f != "prom" {
			return xerrors.Errorf("unsupported stats format %q", f)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "Label every value in an inclusive range",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "from",
					Value:  1,
					EnvVar: "FIZZBUZZ_FROM",
					Usage:  "The first value of the range",
				},
				cli.IntFlag{
					Name:   "to",
					Value:  100,
					EnvVar: "FIZZBUZZ_TO",
					Usage:  "The last value of the range",
				},
			},
			Action: func(appCtx *cli.Context) error {
				return withDriver(appCtx, out, func(ctx context.Context, d *driver.Driver) error {
					return d.Run(ctx, appCtx.Int("from"), appCtx.Int("to"))
				})
			},
		},
		{
			Name:            "classify",
			Usage:           "Label the integers passed as arguments",
			ArgsUsage:       "VALUE...",
			SkipFlagParsing: true, // negative values are not flags
			Action: func(appCtx *cli.Context) error {
				values, err := parseArgs(appCtx.Args())
				if err != nil {
					return err
				}
				for _, v := range values {
					if _, err := fmt.Fprintln(out, fizzbuzz.Classify(v)); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name:  "stdin",
			Usage: "Label the integers read from standard input, one per line",
			Action: func(appCtx *cli.Context) error {
				return withDriver(appCtx, out, func(ctx context.Context, d *driver.Driver) error {
					return d.RunLines(ctx, in)
				})
			},
		},
	}
	return app
}

func withDriver(appCtx *cli.Context, out io.Writer, fn func(context.Context, *driver.Driver) error) error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		defer signal.Stop(sigCh)
		select {
		case s := <-sigCh:
			logger.WithField("signal", s.String()).Infof("shutting down due to signal")
			cancelFn()
		case <-ctx.Done():
		}
	}()

	tl := tally.New()
	d, err := driver.New(driver.Config{
		Classifier: fizzbuzz.Classifier{},
		Output:     out,
		Tally:      tl,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	runErr := fn(ctx, d)
	if appCtx.GlobalBool("stats") {
		if err := printStats(out, tl, appCtx.GlobalString("stats-format")); err != nil && runErr == nil {
			runErr = err
		}
	}
	return runErr
}

func parseArgs(args []string) ([]int, error) {
	var (
		err    error
		values = make([]int, 0, len(args))
	)
	for i, arg := range args {
		v, pErr := strconv.Atoi(arg)
		if pErr != nil {
			err = multierror.Append(err, xerrors.Errorf("argument %d: %w", i+1, pErr))
			continue
		}
		values = append(values, v)
	}
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, xerrors.Errorf("at least one value must be specified")
	}
	return values, nil
}

func printStats(out io.Writer, tl *tally.Tally, format string) error {
	if format == "prom" {
		families, err := tl.Registry().Gather()
		if err != nil {
			return xerrors.Errorf("unable to gather label counters: %w", err)
		}
		enc := expfmt.NewEncoder(out, expfmt.FmtText)
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				return xerrors.Errorf("unable to encode label counters: %w", err)
			}
		}
		return nil
	}

	snap := tl.Snapshot()
	for _, k := range fizzbuzz.Kinds {
		if _, err := fmt.Fprintf(out, "%-8s %d\n", k.String()+":", snap[k]); err != nil {
			return xerrors.Errorf("unable to write label counters: %w", err)
		}
	}
	return nil
}
