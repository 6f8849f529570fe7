package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/tipsbook/go-tips/kover/coverage"
)

var (
	appName = "covercheck"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	if err := makeApp(os.Stdout).Run(os.Args); err != nil {
		logger.WithField("err", err).Error("coverage verification failed")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "Fail when the statement coverage of a cover profile is below a minimum"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "profile",
			Value:  "cover.out",
			EnvVar: "COVER_PROFILE",
			Usage:  "The cover profile produced by go test -coverprofile",
		},
		cli.Float64Flag{
			Name:   "min",
			Value:  100,
			EnvVar: "COVER_MIN_PERCENT",
			Usage:  "The minimum statement coverage rate in percent",
		},
	}
	app.Action = func(appCtx *cli.Context) error {
		path := appCtx.String("profile")
		if path == "" {
			return xerrors.Errorf("cover profile must be specified with --profile")
		}

		report, err := coverage.CheckFile(path, appCtx.Float64("min"))
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"profile":   path,
			"covered":   report.Covered,
			"total":     report.Total,
			"min_bound": appCtx.Float64("min"),
		}).Info("coverage verified")
		_, err = fmt.Fprintf(out, "coverage: %s\n", report)
		return err
	}
	return app
}
