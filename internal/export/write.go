package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/solarflux/goesxrs/internal/config"
)

// Write sends reports to the destination cfg names. stdout is used for
// json and prom when cfg.Path is "-".
func Write(cfg config.OutputConfig, stdout io.Writer, reports []*Report) error {
	switch cfg.Format {
	case config.OutputParquet:
		paths, err := WriteParquet(cfg.Path, reports)
		if err != nil {
			return err
		}
		slog.Info("export: wrote parquet", "files", paths)
		return nil
	case config.OutputJSON, config.OutputProm:
	default:
		return fmt.Errorf("export: unknown format %q", cfg.Format)
	}

	w := stdout
	if cfg.Path != config.Stdout {
		f, err := os.Create(cfg.Path)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer f.Close()
		w = f
	}
	var err error
	if cfg.Format == config.OutputJSON {
		err = WriteJSON(w, reports)
	} else {
		err = WriteProm(w, reports)
	}
	if err != nil {
		return err
	}
	slog.Info("export: wrote reports", "format", cfg.Format, "path", cfg.Path, "reports", len(reports))
	return nil
}
