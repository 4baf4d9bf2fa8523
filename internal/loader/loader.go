package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/lightcurve"
)

// Loader reads one lightcurve.
type Loader interface {
	Load(ctx context.Context) (*lightcurve.Lightcurve, error)
}

// New returns the Loader for src.Format.
func New(src config.Source) (Loader, error) {
	switch src.Format {
	case config.FormatCSV:
		return &csvLoader{src: src}, nil
	case config.FormatParquet:
		return &parquetLoader{src: src}, nil
	default:
		return nil, fmt.Errorf("loader: unsupported format %q", src.Format)
	}
}

// finish applies the source's telescope override and logs the load.
func finish(src config.Source, lc *lightcurve.Lightcurve) *lightcurve.Lightcurve {
	if src.Telescope != "" {
		lc.Meta[lightcurve.MetaTelescope] = src.Telescope
	}
	slog.Debug("loader: read lightcurve",
		"source", src.ID,
		"format", src.Format,
		"samples", lc.Len(),
		"columns", lc.Columns(),
	)
	return lc
}
