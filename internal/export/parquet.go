package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/solarflux/goesxrs/internal/lightcurve"
)

// Row is one per-sample parquet record. Derived columns are null when the
// lightcurve lacks them.
type Row struct {
	Time           int64    `parquet:"name=time, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	XRSA           float64  `parquet:"name=xrsa, type=DOUBLE"`
	XRSB           float64  `parquet:"name=xrsb, type=DOUBLE"`
	Temperature    *float64 `parquet:"name=temperature, type=DOUBLE, repetitiontype=OPTIONAL"`
	EM             *float64 `parquet:"name=em, type=DOUBLE, repetitiontype=OPTIONAL"`
	RadLossRate    *float64 `parquet:"name=rad_loss_rate, type=DOUBLE, repetitiontype=OPTIONAL"`
	LuminosityXRSA *float64 `parquet:"name=luminosity_xrsa, type=DOUBLE, repetitiontype=OPTIONAL"`
	LuminosityXRSB *float64 `parquet:"name=luminosity_xrsb, type=DOUBLE, repetitiontype=OPTIONAL"`
	Telescope      string   `parquet:"name=telescope, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// WriteParquet writes each report's lightcurve to dir/<source_id>.parquet
// and returns the paths written. Reports without a lightcurve are skipped.
func WriteParquet(dir string, reports []*Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: parquet dir: %w", err)
	}
	var paths []string
	for _, r := range reports {
		if r.Lightcurve == nil {
			continue
		}
		path := filepath.Join(dir, r.SourceID+".parquet")
		if err := writeRows(path, Rows(r.Lightcurve)); err != nil {
			return paths, fmt.Errorf("export: parquet %s: %w", r.SourceID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Rows flattens lc into parquet rows.
func Rows(lc *lightcurve.Lightcurve) []Row {
	col := func(name string) []float64 {
		v, _ := lc.Column(name)
		return v
	}
	at := func(v []float64, i int) *float64 {
		if v == nil {
			return nil
		}
		x := v[i]
		return &x
	}
	xrsa, xrsb := col(lightcurve.ColXRSA), col(lightcurve.ColXRSB)
	temp, em := col(lightcurve.ColTemperature), col(lightcurve.ColEM)
	rl := col(lightcurve.ColRadLossRate)
	lxa, lxb := col(lightcurve.ColLuminosityXRSA), col(lightcurve.ColLuminosityXRSB)
	tel := lc.Meta[lightcurve.MetaTelescope]

	rows := make([]Row, lc.Len())
	for i, t := range lc.Times {
		rows[i] = Row{
			Time:           t.UnixMilli(),
			Temperature:    at(temp, i),
			EM:             at(em, i),
			RadLossRate:    at(rl, i),
			LuminosityXRSA: at(lxa, i),
			LuminosityXRSB: at(lxb, i),
			Telescope:      tel,
		}
		if xrsa != nil {
			rows[i].XRSA = xrsa[i]
		}
		if xrsb != nil {
			rows[i].XRSB = xrsb[i]
		}
	}
	return rows
}

func writeRows(path string, rows []Row) (err error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fw.Close(); err == nil {
			err = cerr
		}
	}()

	pw, err := writer.NewParquetWriter(fw, new(Row), 1)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			return err
		}
	}
	return pw.WriteStop()
}
