package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/events"
	"github.com/solarflux/goesxrs/pkg/types"
)

var timeFormats = []string{time.RFC3339, "2006-01-02 15:04", time.DateOnly}

func newEventsCmd(root *rootOptions) *cobra.Command {
	var start, end, class, catalog string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List flare events in a time range",
		Long: `Lists catalog events that start between --start and --end, optionally
keeping only flares at least as strong as --class.

Example:
  goesxrs events --start 2011-06-07 --end 2011-06-08 --class M1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if catalog == "" {
				cfg, err := config.Load(root.configPath)
				if err != nil {
					return fmt.Errorf("no --catalog given: %w", err)
				}
				catalog = cfg.Events.Catalog
			}
			if catalog == "" {
				return fmt.Errorf("no event catalog configured: %w", types.ErrConfig)
			}
			r, err := parseRange(start, end)
			if err != nil {
				return err
			}
			evs, err := events.List(cmd.Context(), events.NewFileCatalog(catalog), r, class)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tSTART\tPEAK\tEND\tCLASS\tLOCATION\tAR")
			for _, ev := range evs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t(%d, %d)\t%d\n",
					ev.EventDate,
					ev.StartTime.Format("15:04"),
					ev.PeakTime.Format("15:04"),
					ev.EndTime.Format("15:04"),
					ev.Class,
					ev.Location[0], ev.Location[1],
					ev.ActiveRegion,
				)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&start, "start", "", "range start (RFC 3339, \"YYYY-MM-DD HH:MM\" or YYYY-MM-DD)")
	f.StringVar(&end, "end", "", "range end")
	f.StringVar(&class, "class", "", "minimum GOES class, e.g. M1")
	f.StringVar(&catalog, "catalog", "", "event catalog file (defaults to events.catalog in the config)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func parseRange(start, end string) (events.TimeRange, error) {
	s, err := parseTime(start)
	if err != nil {
		return events.TimeRange{}, fmt.Errorf("start: %w", err)
	}
	e, err := parseTime(end)
	if err != nil {
		return events.TimeRange{}, fmt.Errorf("end: %w", err)
	}
	return events.TimeRange{Start: s, End: e}, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}
