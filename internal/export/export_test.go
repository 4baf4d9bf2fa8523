package export

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/solarflux/goesxrs/internal/alerts"
	"github.com/solarflux/goesxrs/internal/compute"
	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/lightcurve"
)

func testResult(t *testing.T) *compute.Result {
	t.Helper()
	start := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 4)
	for i := range times {
		times[i] = start.Add(time.Duration(2*i) * time.Second)
	}
	lc := lightcurve.New(times, map[string]string{lightcurve.MetaTelescope: "GOES 15"})
	if err := lc.SetColumn(lightcurve.ColXRSA, []float64{7e-7, 9e-7, 8e-7, 7e-7}); err != nil {
		t.Fatal(err)
	}
	if err := lc.SetColumn(lightcurve.ColXRSB, []float64{7e-6, 2.5e-5, 9e-6, 7e-6}); err != nil {
		t.Fatal(err)
	}
	e, err := compute.NewEngine(compute.Options{})
	if err != nil {
		t.Fatal(err)
	}
	res, err := e.Process(compute.FromLightcurve(lc))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return res
}

func almostEqual(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Abs(b)
}

func TestSummarize(t *testing.T) {
	res := testResult(t)
	r := Summarize("goes15", res)

	if r.ID == "" || r.SourceID != "goes15" || r.Telescope != "GOES 15" || r.Abundance != "coronal" {
		t.Errorf("identity fields: %+v", r)
	}
	if r.Samples != 4 {
		t.Errorf("samples = %d", r.Samples)
	}
	if r.PeakFlux != 2.5e-5 || r.PeakClass != "M2.5" {
		t.Errorf("peak = %g %s", r.PeakFlux, r.PeakClass)
	}
	if !r.PeakTime.Equal(res.Times[1]) {
		t.Errorf("peak time = %s", r.PeakTime)
	}
	if !almostEqual(r.RadiatedEnergy, res.RadLoss.Integral, 0) || r.RadiatedEnergy <= 0 {
		t.Errorf("radiated energy = %g", r.RadiatedEnergy)
	}
	if r.LongEnergy <= r.ShortEnergy {
		t.Errorf("long energy %g should exceed short %g", r.LongEnergy, r.ShortEnergy)
	}
	for _, k := range []string{lightcurve.ColTemperature, compute.KeyRadLossRate, compute.KeyLongLum} {
		if _, ok := r.Series[k]; !ok {
			t.Errorf("series lacks %q", k)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	r := Summarize("goes15", testResult(t))
	r.Alerts = []alerts.Alert{{RuleName: "flare", SourceID: "goes15", Severity: "warning"}}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*Report{r}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports", len(got))
	}
	if got[0]["peak_class"] != "M2.5" || got[0]["source_id"] != "goes15" {
		t.Errorf("report = %v", got[0])
	}
	if _, ok := got[0]["rad_loss_int"]; !ok {
		t.Error("rad_loss_int missing")
	}
	if fired, ok := got[0]["alerts"].([]any); !ok || len(fired) != 1 {
		t.Errorf("alerts = %v", got[0]["alerts"])
	}
}

func TestWriteProm(t *testing.T) {
	r := Summarize("goes15", testResult(t))
	var buf bytes.Buffer
	if err := WriteProm(&buf, []*Report{r}); err != nil {
		t.Fatalf("WriteProm: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE " + MetricPeakFlux + " gauge",
		MetricPeakFlux + `{source="goes15",telescope="GOES 15"} 2.5e-05`,
		MetricXrayEnergy + `{source="goes15",telescope="GOES 15",channel="long"}`,
		MetricXrayEnergy + `{source="goes15",telescope="GOES 15",channel="short"}`,
		MetricAlertsFired + `{source="goes15",telescope="GOES 15"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteParquet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := Summarize("goes15", testResult(t))
	paths, err := WriteParquet(dir, []*Report{r, {SourceID: "raw"}})
	if err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "goes15.parquet" {
		t.Fatalf("paths = %v", paths)
	}

	fr, err := local.NewLocalFileReader(paths[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(Row), 1)
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	defer pr.ReadStop()
	rows := make([]Row, pr.GetNumRows())
	if err := pr.Read(&rows); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[1].XRSB != 2.5e-5 || rows[1].Telescope != "GOES 15" {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[1].Temperature == nil || rows[1].RadLossRate == nil || rows[1].LuminosityXRSB == nil {
		t.Errorf("derived columns missing in row 1: %+v", rows[1])
	}
	if rows[0].Time != r.Start.UnixMilli() {
		t.Errorf("time = %d", rows[0].Time)
	}
}

func TestRows_MissingDerived(t *testing.T) {
	lc := lightcurve.New([]time.Time{time.Unix(0, 0)}, nil)
	if err := lc.SetColumn(lightcurve.ColXRSB, []float64{1e-6}); err != nil {
		t.Fatal(err)
	}
	rows := Rows(lc)
	if rows[0].Temperature != nil || rows[0].EM != nil || rows[0].XRSB != 1e-6 {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestWrite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.prom")
	r := Summarize("goes15", testResult(t))
	var stdout bytes.Buffer
	if err := Write(config.OutputConfig{Format: config.OutputProm, Path: path}, &stdout, []*Report{r}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if stdout.Len() != 0 {
		t.Error("file output also wrote to stdout")
	}
	if err := Write(config.OutputConfig{Format: config.OutputJSON, Path: config.Stdout}, &stdout, []*Report{r}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(stdout.String(), `"source_id": "goes15"`) {
		t.Errorf("stdout = %s", stdout.String())
	}
}
