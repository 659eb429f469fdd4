package panelgen

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
	"github.com/okian/panelboard/pkg/logger"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

// fakeService accepts each ID once and refuses the first refuseFirst batches.
type fakeService struct {
	mu          sync.Mutex
	ids         map[string]bool
	refuseFirst int
	posts       int
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.URL.Path == "/healthz":
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/panels" && r.Method == http.MethodPost:
		f.posts++
		if f.posts <= f.refuseFirst {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		var recs []model.PanelRecord
		if err := json.NewDecoder(r.Body).Decode(&recs); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var res BatchResult
		for _, rec := range recs {
			if f.ids[rec.ID] {
				res.Duplicate++
				continue
			}
			f.ids[rec.ID] = true
			res.Accepted++
		}
		res.Status = "accepted"
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(res)
	case r.URL.Path == "/overview":
		_ = json.NewEncoder(w).Encode(types.Overview{Total: len(f.ids), Distributions: []types.Distribution{}})
	default:
		http.NotFound(w, r)
	}
}

func TestClient(t *testing.T) {
	Convey("Given a client for a running service", t, func() {
		fake := &fakeService{ids: map[string]bool{}}
		srv := httptest.NewServer(fake)
		defer srv.Close()
		client := NewClient(srv.URL+"/", time.Second)
		ctx := context.Background()

		Convey("Health succeeds", func() {
			So(client.Health(ctx), ShouldBeNil)
		})

		Convey("Submitting a batch twice reports duplicates the second time", func() {
			recs := NewGenerator(3).Generate(4)
			res, err := client.Submit(ctx, recs)
			So(err, ShouldBeNil)
			So(res.Accepted, ShouldEqual, 4)

			res, err = client.Submit(ctx, recs)
			So(err, ShouldBeNil)
			So(res.Duplicate, ShouldEqual, 4)
		})

		Convey("A 429 maps to ErrBackpressure", func() {
			fake.refuseFirst = 1
			_, err := client.Submit(ctx, NewGenerator(3).Generate(1))
			So(errors.Is(err, ErrBackpressure), ShouldBeTrue)
		})

		Convey("Overview decodes the total", func() {
			_, _ = client.Submit(ctx, NewGenerator(5).Generate(3))
			ov, err := client.Overview(ctx, url.Values{"gender": {"여성"}})
			So(err, ShouldBeNil)
			So(ov.Total, ShouldEqual, 3)
		})
	})

	Convey("Given a service that is down", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := NewClient(srv.URL, 100*time.Millisecond)

		Convey("Health reports unhealthy", func() {
			So(errors.Is(client.Health(context.Background()), ErrUnhealthy), ShouldBeTrue)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a service that refuses the first batches", t, func() {
		fake := &fakeService{ids: map[string]bool{}, refuseFirst: 2}
		srv := httptest.NewServer(fake)
		defer srv.Close()

		out := t.TempDir() + "/panels.yaml"
		stats, err := Run(context.Background(), Config{
			BaseURL:    srv.URL,
			Count:      25,
			BatchSize:  10,
			Workers:    2,
			Seed:       9,
			Timeout:    time.Second,
			OutputFile: out,
		})

		Convey("Every panel is eventually accepted and visible", func() {
			So(err, ShouldBeNil)
			So(stats.Generated, ShouldEqual, 25)
			So(stats.Accepted, ShouldEqual, 25)
			So(stats.Failed, ShouldEqual, 0)
			So(stats.Visible, ShouldEqual, 25)
		})
	})
}
