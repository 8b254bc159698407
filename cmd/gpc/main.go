// Command gpc converts between coordinates and grid point codes.
//
//	gpc encode [-plain] [-geohash] LAT LNG
//	gpc decode CODE
//	gpc bounds CODE
//
// Settings are read from the environment, and from a .env file in the
// working directory if there is one: GPC_LOG_LEVEL, GPC_FORMAT
// (printable or plain) and GPC_GEOHASH_PRECISION.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mmcloughlin/geohash"
	"github.com/sirupsen/logrus"
	"github.com/tzneal/gpc"
)

var (
	logger = logrus.WithFields(logrus.Fields{
		"app":       "gpc",
		"component": "cli",
	})
)

var errUsage = errors.New("usage: gpc encode [-plain] [-geohash] LAT LNG | gpc decode CODE | gpc bounds CODE")

type config struct {
	logLevel         logrus.Level
	plain            bool
	geohashPrecision uint
}

func configFromEnv(getenv func(string) string) (config, error) {
	cfg := config{
		logLevel:         logrus.WarnLevel,
		geohashPrecision: 9,
	}
	if v := getenv("GPC_LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, err
		}
		cfg.logLevel = lvl
	}
	switch strings.ToLower(getenv("GPC_FORMAT")) {
	case "", "printable":
	case "plain":
		cfg.plain = true
	default:
		return cfg, fmt.Errorf("GPC_FORMAT must be printable or plain, got %q", getenv("GPC_FORMAT"))
	}
	if v := getenv("GPC_GEOHASH_PRECISION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			return cfg, fmt.Errorf("GPC_GEOHASH_PRECISION must be between 1 and 12, got %q", v)
		}
		cfg.geohashPrecision = uint(n)
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load(".env")
	logrus.SetOutput(os.Stderr)

	cfg, err := configFromEnv(os.Getenv)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Fatal("invalid configuration")
	}
	logrus.SetLevel(cfg.logLevel)

	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, errUsage)
			os.Exit(2)
		}
		logger.WithFields(logrus.Fields{
			"error": err.Error(),
			"kind":  gpc.KindOf(err).String(),
		}).Fatal("conversion failed")
	}
}

func run(cfg config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "encode":
		return runEncode(cfg, args[1:], w)
	case "decode":
		return runDecode(args[1:], w)
	case "bounds":
		return runBounds(args[1:], w)
	}
	return errUsage
}

func runEncode(cfg config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	plain := fs.Bool("plain", cfg.plain, "print the code without '#' and hyphens")
	withGeohash := fs.Bool("geohash", false, "also print the geohash of the point")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	lat, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("%w: %s", gpc.ErrInvalidLatitude, fs.Arg(0))
	}
	lng, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("%w: %s", gpc.ErrInvalidLongitude, fs.Arg(1))
	}

	code, err := gpc.Encode(lat, lng, !*plain)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"latitude":  lat,
		"longitude": lng,
		"code":      code,
	}).Debug("encoded")
	fmt.Fprintln(w, code)
	if *withGeohash {
		fmt.Fprintln(w, geohash.EncodeWithPrecision(lat, lng, cfg.geohashPrecision))
	}
	return nil
}

func runDecode(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	c, err := gpc.Decode(args[0])
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"code":       args[0],
		"coordinate": c.String(),
	}).Debug("decoded")
	fmt.Fprintf(w, "%.5f %.5f\n", c.Latitude, c.Longitude)
	return nil
}

func runBounds(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	rect, err := gpc.DecodeRect(args[0])
	if err != nil {
		return err
	}
	lo, hi := rect.Lo(), rect.Hi()
	fmt.Fprintf(w, "%.5f %.5f\n%.5f %.5f\n",
		lo.Lat.Degrees(), lo.Lng.Degrees(), hi.Lat.Degrees(), hi.Lng.Degrees())
	return nil
}
