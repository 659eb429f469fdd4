package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	app "github.com/okian/panelboard/internal/app"
	"github.com/okian/panelboard/internal/config"
	"github.com/okian/panelboard/pkg/logger"
	"github.com/okian/panelboard/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			setEnv(t, map[string]string{
				"PANELBOARD_ADDR":         ":8080",
				"PANELBOARD_QUEUE_SIZE":   "1000",
				"PANELBOARD_WORKER_COUNT": "4",
			})

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 1000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When building the service from config", func() {
			cfg := config.New()
			cfg.WorkerCount = 2

			convey.Convey("Then it should be creatable without a seed file", func() {
				svc, err := newService(cfg, logger.Get())
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.GetStats()["workerCount"], convey.ShouldEqual, 2)
			})

			convey.Convey("And it should preload a seed file", func() {
				path := filepath.Join(t.TempDir(), "seed.json")
				convey.So(os.WriteFile(path, []byte(`[{"id":"s1","region":"서울"},{"id":"s2"}]`), 0o600), convey.ShouldBeNil)
				cfg.SeedFile = path

				svc, err := newService(cfg, logger.Get())
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
				defer svc.Stop()

				convey.So(svc.GetStats()["totalPanels"], convey.ShouldEqual, 2)
			})

			convey.Convey("And a missing seed file should fail", func() {
				cfg.SeedFile = filepath.Join(t.TempDir(), "absent.yaml")
				svc, err := newService(cfg, logger.Get())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(svc, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewMux(t *testing.T) {
	convey.Convey("Given a started service behind the mux", t, func() {
		ctx := context.Background()
		svc := app.New(app.WithWorkerCount(1), app.WithLogger(logger.Get()))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		mux := newMux(ctx, svc, 100)

		convey.Convey("Then API and docs routes are served", func() {
			for _, path := range []string{"/overview", "/panels", "/stats", "/healthz", "/dashboard", "/openapi.yaml", "/api-docs"} {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing service metrics updater", func() {
			svc := app.New()

			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startServiceMetricsUpdater(ctx, svc)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing metric updates", func() {
			convey.Convey("Then they should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
				convey.So(func() { updateServiceMetrics(app.New()) }, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			t.Setenv("PANELBOARD_MAX_SEARCH_LIMIT", "0")

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation with invalid options", func() {
			convey.Convey("Then service should handle invalid options gracefully", func() {
				svc := app.New(
					app.WithWorkerCount(0),
					app.WithQueueSize(0),
					app.WithDedupeSize(0),
				)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.GetStats(), convey.ShouldNotBeNil)
			})
		})
	})
}
