package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/lightcurve"
	"github.com/solarflux/goesxrs/pkg/types"
)

const colTime = "time"

// optionalColumns are loaded when the file carries them.
var optionalColumns = []string{lightcurve.ColTemperature, lightcurve.ColEM}

type csvLoader struct {
	src config.Source
}

func (l *csvLoader) Load(ctx context.Context) (*lightcurve.Lightcurve, error) {
	f, err := os.Open(l.src.Path)
	if err != nil {
		return nil, fmt.Errorf("loader %q: %w", l.src.ID, err)
	}
	defer f.Close()

	lc, err := ReadCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("loader %q: %w", l.src.ID, err)
	}
	return finish(l.src, lc), nil
}

// ReadCSV parses a lightcurve in the csv layout described in the package doc.
func ReadCSV(ctx context.Context, r io.Reader) (*lightcurve.Lightcurve, error) {
	br := bufio.NewReader(r)
	meta, err := readMeta(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{colTime, lightcurve.ColXRSA, lightcurve.ColXRSB} {
		if _, ok := index[req]; !ok {
			return nil, fmt.Errorf("csv header lacks %q column: %w", req, types.ErrType)
		}
	}
	names := []string{lightcurve.ColXRSA, lightcurve.ColXRSB}
	for _, opt := range optionalColumns {
		if _, ok := index[opt]; ok {
			names = append(names, opt)
		}
	}

	times := make([]time.Time, 0)
	cols := make(map[string][]float64, len(names))
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, rec[index[colTime]])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: time: %w", line, err)
		}
		times = append(times, t.UTC())
		for _, name := range names {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[index[name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("csv row %d: %s: %w", line, name, err)
			}
			cols[name] = append(cols[name], v)
		}
	}

	lc := lightcurve.New(times, meta)
	for _, name := range names {
		if err := lc.SetColumn(name, cols[name]); err != nil {
			return nil, err
		}
	}
	return lc, nil
}

// readMeta consumes leading "# KEY: value" lines.
func readMeta(br *bufio.Reader) (map[string]string, error) {
	meta := make(map[string]string)
	for {
		b, err := br.Peek(1)
		if err != nil || b[0] != '#' {
			return meta, nil
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv metadata: %w", err)
		}
		k, v, ok := strings.Cut(strings.TrimPrefix(line, "#"), ":")
		if ok {
			meta[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
}
