// Package main reports the closest distance between two geometries from a config file.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/linedist/config"
	"go.viam.com/linedist/logging"
	"go.viam.com/linedist/spatialmath"
)

const (
	flagConfig = "config"
	flagDebug  = "debug"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "closestpoints",
		Usage:     "report the closest distance between two configured geometries",
		ArgsUsage: "<label a> <label b>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagConfig,
				Aliases:  []string{"c"},
				Usage:    "load geometries from `FILE`",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Action: closestPointsAction,
	}
}

func closestPointsAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.Errorf("expected two geometry labels, got %d", c.NArg())
	}
	logger := logging.NewLogger("closestpoints")
	res, err := closestPoints(logger, c.String(flagConfig), c.Bool(flagDebug), c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	logger.Infow("closest points", "distance", res.Distance, "param1", res.Param1, "param2", res.Param2)
	return logger.Sync()
}

func closestPoints(logger logging.Logger, path string, debug bool, labelA, labelB string) (spatialmath.DistanceResult, error) {
	cfg, err := config.Read(path)
	if err != nil {
		return spatialmath.DistanceResult{}, err
	}
	logger.SetLevel(cfg.Level())
	if debug {
		logger.SetLevel(logging.DEBUG)
	}

	logger.Debugf("loaded geometries:\n%v", cfg)
	geometries, err := cfg.ParseGeometries()
	if err != nil {
		return spatialmath.DistanceResult{}, err
	}
	a, ok := geometries[labelA]
	if !ok {
		return spatialmath.DistanceResult{}, errors.Errorf("no geometry labeled %q", labelA)
	}
	b, ok := geometries[labelB]
	if !ok {
		return spatialmath.DistanceResult{}, errors.Errorf("no geometry labeled %q", labelB)
	}
	logger.Debugf("querying %v against %v", a, b)
	return config.Query(logger, a, b)
}
