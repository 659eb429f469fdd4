package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func familyNames(reg *prometheus.Registry) []string {
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	return names
}

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(reg),
			WithNamespace("test"),
			WithSubsystem("panels"),
			WithConstLabels(map[string]string{"env": "ci"}),
		)

		Convey("unlabelled collectors are gathered under the configured prefix", func() {
			m.panelsIngested.Inc()
			m.queueSize.Set(3)

			names := familyNames(reg)
			So(names, ShouldContain, "test_panels_panels_ingested_total")
			So(names, ShouldContain, "test_panels_queue_size")
			for _, n := range names {
				So(strings.HasPrefix(n, "test_panels_"), ShouldBeTrue)
			}
		})

		Convey("dimension vectors appear once observed", func() {
			m.aggregationLatency.WithLabelValues("region").Observe(1.5)
			m.distributionBuckets.WithLabelValues("region").Set(4)

			So(familyNames(reg), ShouldContain, "test_panels_aggregation_latency_milliseconds")
			So(testutil.ToFloat64(m.distributionBuckets.WithLabelValues("region")), ShouldEqual, 4)
		})

		Convey("constant labels are attached", func() {
			m.panelsStored.Set(7)
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			found := false
			for _, f := range families {
				if f.GetName() != "test_panels_panels_stored" {
					continue
				}
				for _, lp := range f.GetMetric()[0].GetLabel() {
					if lp.GetName() == "env" && lp.GetValue() == "ci" {
						found = true
					}
				}
			}
			So(found, ShouldBeTrue)
		})
	})

	Convey("Empty option values keep the defaults", t, func() {
		m := NewManager(
			WithPrometheusRegistry(prometheus.NewRegistry()),
			WithNamespace(""),
			WithSubsystem(""),
			WithHistogramBuckets(nil),
		)
		So(m.namespace, ShouldEqual, "panelboard")
		So(m.subsystem, ShouldEqual, "dashboard")
		So(m.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Package recorders update the global manager", t, func() {
		before := testutil.ToFloat64(globalManager.panelsDuplicate)
		RecordPanelDuplicate()
		So(testutil.ToFloat64(globalManager.panelsDuplicate), ShouldEqual, before+1)

		RecordAggregation("income", 0.4, 11, 250)
		So(testutil.ToFloat64(globalManager.distributionBuckets.WithLabelValues("income")), ShouldEqual, 11)
		So(testutil.ToFloat64(globalManager.distributionValid.WithLabelValues("income")), ShouldEqual, 250)

		UpdateQueueCapacity(64)
		So(testutil.ToFloat64(globalManager.queueCapacity), ShouldEqual, 64)

		RecordHTTPRequest("/overview", "GET", "200")
		So(testutil.ToFloat64(globalManager.httpRequests.WithLabelValues("/overview", "GET", "200")), ShouldBeGreaterThanOrEqualTo, 1)

		So(GetRegistry(), ShouldEqual, customRegistry)
	})
}
