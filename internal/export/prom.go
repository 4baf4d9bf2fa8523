package export

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric family names written by WriteProm.
const (
	MetricPeakFlux        = "goesxrs_peak_flux_watts_per_square_meter"
	MetricPeakTemperature = "goesxrs_peak_temperature_megakelvin"
	MetricPeakEM          = "goesxrs_peak_emission_measure_per_cubic_centimeter"
	MetricRadiatedEnergy  = "goesxrs_radiated_energy_ergs"
	MetricXrayEnergy      = "goesxrs_xray_energy_ergs"
	MetricAlertsFired     = "goesxrs_alerts_fired"
)

type gaugeSpec struct {
	name, help string
	values     func(*Report) []labelledValue
}

type labelledValue struct {
	labels [][2]string
	value  float64
}

func single(f func(*Report) float64) func(*Report) []labelledValue {
	return func(r *Report) []labelledValue { return []labelledValue{{value: f(r)}} }
}

var gauges = []gaugeSpec{
	{MetricPeakFlux, "Peak 1-8 Å flux.", single(func(r *Report) float64 { return r.PeakFlux })},
	{MetricPeakTemperature, "Peak isothermal plasma temperature.", single(func(r *Report) float64 { return r.PeakTemperature })},
	{MetricPeakEM, "Peak volume emission measure.", single(func(r *Report) float64 { return r.PeakEM })},
	{MetricRadiatedEnergy, "Radiative loss integrated over the lightcurve.", single(func(r *Report) float64 { return r.RadiatedEnergy })},
	{MetricXrayEnergy, "X-ray luminosity integrated over the lightcurve.", func(r *Report) []labelledValue {
		return []labelledValue{
			{labels: [][2]string{{"channel", "long"}}, value: r.LongEnergy},
			{labels: [][2]string{{"channel", "short"}}, value: r.ShortEnergy},
		}
	}},
	{MetricAlertsFired, "Alert rules that fired.", single(func(r *Report) float64 { return float64(len(r.Alerts)) })},
}

// WriteProm writes reports in the Prometheus text exposition format.
func WriteProm(w io.Writer, reports []*Report) error {
	for _, mf := range metricFamilies(reports) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("export: prom: %w", err)
		}
	}
	return nil
}

func metricFamilies(reports []*Report) []*dto.MetricFamily {
	out := make([]*dto.MetricFamily, 0, len(gauges))
	for _, g := range gauges {
		mf := &dto.MetricFamily{
			Name: proto.String(g.name),
			Help: proto.String(g.help),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		for _, r := range reports {
			for _, lv := range g.values(r) {
				labels := []*dto.LabelPair{
					{Name: proto.String("source"), Value: proto.String(r.SourceID)},
					{Name: proto.String("telescope"), Value: proto.String(r.Telescope)},
				}
				for _, l := range lv.labels {
					labels = append(labels, &dto.LabelPair{Name: proto.String(l[0]), Value: proto.String(l[1])})
				}
				mf.Metric = append(mf.Metric, &dto.Metric{
					Label: labels,
					Gauge: &dto.Gauge{Value: proto.Float64(lv.value)},
				})
			}
		}
		out = append(out, mf)
	}
	return out
}
