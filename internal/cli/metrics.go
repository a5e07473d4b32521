package cli

import (
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

// sample is one scalar read from a gathered metric family.
type sample struct {
	name  string
	value float64
}

// samples flattens metric families into named scalars. Histograms report
// their sample count and sum; labels are appended as {k=v,...}.
func samples(families []*dto.MetricFamily) []sample {
	var out []sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName() + labelSuffix(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, sample{name, m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, sample{name, m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					sample{name + "_count", float64(h.GetSampleCount())},
					sample{name + "_sum", h.GetSampleSum()})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func labelSuffix(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	pairs := make([]string, len(labels))
	for i, l := range labels {
		pairs[i] = l.GetName() + "=" + l.GetValue()
	}
	return "{" + strings.Join(pairs, ",") + "}"
}
