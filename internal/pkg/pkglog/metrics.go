package pkglog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // registered once with the default registry
var recordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mslogger_log_records_total",
		Help: "Total number of log records written, by level",
	},
	[]string{"level"},
)

// otherLevelLabel groups every level outside the table so caller-supplied
// numbers cannot grow the label set.
const otherLevelLabel = "other"

func levelLabel(l Level) string {
	if !l.Valid() {
		return otherLevelLabel
	}
	return l.String()
}
