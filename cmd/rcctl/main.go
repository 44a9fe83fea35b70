package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/jroosing/dabmux-gui/internal/logging"
	"github.com/jroosing/dabmux-gui/internal/rc"
)

const usage = `usage: rcctl [flags] <command>

commands:
  list                        print every RC parameter
  set <module> <param> <value> set one RC parameter
  stats                       print per-input statistics

flags:
`

func main() {
	var (
		rcEndpoint    = flag.String("rc", rc.DefaultRCEndpoint, "Mux RC endpoint")
		statsEndpoint = flag.String("stats", rc.DefaultStatsEndpoint, "Mux stats endpoint")
		format        = flag.String("set-reply-format", "frames", "Set reply format (frames or json)")
		asJSON        = flag.Bool("json", false, "Print results as JSON")
		quiet         = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
		debug         = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := "WARNING"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.New(logging.Config{Level: level})

	setFormat, err := rc.ParseSetReplyFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rcctl: %v\n", err)
		os.Exit(2)
	}

	client := rc.New(rc.Options{
		RCEndpoint:     *rcEndpoint,
		StatsEndpoint:  *statsEndpoint,
		SetReplyFormat: setFormat,
		Logger:         logger,
	})

	out := io.Writer(os.Stdout)
	if *quiet {
		out = io.Discard
	}

	if err := run(context.Background(), client, flag.Args(), out, *asJSON); err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "rcctl error: %v\n", err)
		}
		var usageErr usageError
		if errors.As(err, &usageErr) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type usageError string

func (e usageError) Error() string { return string(e) }

func run(ctx context.Context, client *rc.Client, args []string, out io.Writer, asJSON bool) error {
	if len(args) == 0 {
		return usageError("command required")
	}

	switch args[0] {
	case "list":
		params, err := client.ListParameters(ctx)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(out, params)
		}
		for _, p := range params {
			fmt.Fprintf(out, "%s.%s = %s\n", p.Module, p.Param, p.Value)
		}
		return nil

	case "set":
		if len(args) != 4 {
			return usageError("set needs <module> <param> <value>")
		}
		if err := client.SetParameter(ctx, args[1], args[2], args[3]); err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")
		return nil

	case "stats":
		stats, err := client.Stats(ctx)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(out, stats)
		}
		return writeStats(out, stats)

	default:
		return usageError(fmt.Sprintf("unknown command %q", args[0]))
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStats(out io.Writer, stats rc.Stats) error {
	fmt.Fprintf(out, "version=%s inputs=%d\n", stats.Version, len(stats.Inputs))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tSTATE\tMIN\tMAX\tUNDER\tOVER\tPEAK L\tPEAK R")
	for _, in := range stats.Inputs {
		st := in.Stat
		state := "-"
		if st.State != nil {
			state = *st.State
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			in.Name, state, st.MinFill, st.MaxFill,
			st.NumUnderruns, st.NumOverruns, st.PeakLeft, st.PeakRight)
	}
	return tw.Flush()
}
