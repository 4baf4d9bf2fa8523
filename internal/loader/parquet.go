package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/lightcurve"
)

// Sample is one parquet row of a raw XRS lightcurve.
type Sample struct {
	Time      int64   `parquet:"name=time, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	XRSA      float64 `parquet:"name=xrsa, type=DOUBLE"`
	XRSB      float64 `parquet:"name=xrsb, type=DOUBLE"`
	Telescope string  `parquet:"name=telescope, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// parquetBatch is how many rows are decoded per Read call.
const parquetBatch = 4096

type parquetLoader struct {
	src config.Source
}

func (l *parquetLoader) Load(ctx context.Context) (*lightcurve.Lightcurve, error) {
	fr, err := local.NewLocalFileReader(l.src.Path)
	if err != nil {
		return nil, fmt.Errorf("loader %q: open: %w", l.src.ID, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(Sample), 1)
	if err != nil {
		return nil, fmt.Errorf("loader %q: parquet reader: %w", l.src.ID, err)
	}
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	times := make([]time.Time, 0, n)
	xrsa := make([]float64, 0, n)
	xrsb := make([]float64, 0, n)
	meta := make(map[string]string)
	for read := 0; read < n; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows := make([]Sample, min(parquetBatch, n-read))
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("loader %q: read rows: %w", l.src.ID, err)
		}
		for _, r := range rows {
			times = append(times, time.UnixMilli(r.Time).UTC())
			xrsa = append(xrsa, r.XRSA)
			xrsb = append(xrsb, r.XRSB)
			if _, ok := meta[lightcurve.MetaTelescope]; !ok && r.Telescope != "" {
				meta[lightcurve.MetaTelescope] = r.Telescope
			}
		}
		read += len(rows)
	}

	lc := lightcurve.New(times, meta)
	if err := lc.SetColumn(lightcurve.ColXRSA, xrsa); err != nil {
		return nil, err
	}
	if err := lc.SetColumn(lightcurve.ColXRSB, xrsb); err != nil {
		return nil, err
	}
	return finish(l.src, lc), nil
}
