// Command locctl reads and creates spot map locations over the HTTP API.
//
// Usage:
//
//	locctl [-addr URL] get -id N
//	locctl [-addr URL] create -name NAME -lat F -lng F [-desc D] [-type T] [-wa W] [-wa-note N] [-va V] [-va-note N]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/leggiero/spotmap/internal/client"
	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/fetch"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitRejected = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// errUsage marks argument errors; the flag package has already printed why.
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	root := flag.NewFlagSet("locctl", flag.ContinueOnError)
	root.SetOutput(stderr)
	addr := root.String("addr", envOr("SPOTMAP_ADDR", "http://localhost:8080"), "base URL of the spot map server")
	root.Usage = func() {
		fmt.Fprintln(stderr, "usage: locctl [-addr URL] get -id N")
		fmt.Fprintln(stderr, "       locctl [-addr URL] create -name NAME -lat F -lng F [options]")
		root.PrintDefaults()
	}
	if err := root.Parse(args); err != nil {
		return exitUsage
	}
	if root.NArg() == 0 {
		root.Usage()
		return exitUsage
	}

	c := client.New(*addr, nil)

	var (
		loc domain.Location
		err error
	)
	switch cmd, rest := root.Arg(0), root.Args()[1:]; cmd {
	case "get":
		loc, err = get(ctx, c, rest, stderr)
	case "create":
		loc, err = create(ctx, c, rest, stderr)
	default:
		fmt.Fprintf(stderr, "locctl: unknown command %q\n", cmd)
		root.Usage()
		return exitUsage
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		var apiErr *fetch.APIError
		if errors.As(err, &apiErr) && apiErr.Code == "not_found" {
			fmt.Fprintln(stderr, "location not found")
			return exitRejected
		}
		if ve, ok := fetch.UserError(logger, err); ok {
			fmt.Fprintf(stderr, "%s: %s\n", ve.Param, ve.Reason)
			return exitRejected
		}
		return exitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(loc); err != nil {
		logger.Error("write output", "error", err)
		return exitFailure
	}
	return exitOK
}

func get(ctx context.Context, c *client.Client, args []string, stderr io.Writer) (domain.Location, error) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.Int64("id", 0, "location id (required)")
	if err := fs.Parse(args); err != nil {
		return domain.Location{}, errUsage
	}
	if !isSet(fs, "id") {
		fmt.Fprintln(stderr, "get: -id is required")
		fs.Usage()
		return domain.Location{}, errUsage
	}
	return c.GetLocation(ctx, *id)
}

func create(ctx context.Context, c *client.Client, args []string, stderr io.Writer) (domain.Location, error) {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in domain.LocationInput
	fs.StringVar(&in.Name, "name", "", "location name (required)")
	fs.Func("lat", "latitude (required)", floatInto(&in.Lat))
	fs.Func("lng", "longitude (required)", floatInto(&in.Lng))
	fs.Func("desc", "description", stringInto(&in.Description))
	fs.Func("type", `marker type, e.g. "adventure" or "leggiero"`, stringInto(&in.Type))
	fs.Func("wa", "water availability", stringInto(&in.WaterAvailability))
	fs.Func("wa-note", "water availability note", stringInto(&in.WaterAvailabilityNote))
	fs.Func("va", "vehicle accessibility", stringInto(&in.VehicleAccessibility))
	fs.Func("va-note", "vehicle accessibility note", stringInto(&in.VehicleAccessibilityNote))
	if err := fs.Parse(args); err != nil {
		return domain.Location{}, errUsage
	}
	// Required fields are enforced by the client and the server so the user
	// sees the same "Missing `x`" message either way.
	return c.CreateLocation(ctx, in)
}

// floatInto parses a flag value into *dst, leaving it nil until the flag is given.
func floatInto(dst **float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &f
		return nil
	}
}

func stringInto(dst **string) func(string) error {
	return func(s string) error {
		*dst = &s
		return nil
	}
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
