package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/metafates/gache"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/where"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.9.9", "1.0.0", -1},
			{"2.0.1", "v2.0.10", -1},
			{"1.3.0-rc1", "1.2.9", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Given a malformed version", t, func() {
		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.0", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"tag_name": "v1.4.2"}`))
	}))
	defer server.Close()

	Convey("Given a release feed", t, func() {
		filesystem.SetMemMapFs()
		hits.Store(0)

		ReleasesURL = server.URL
		versionCacher = gache.New[string](&gache.Options{
			Path:       filepath.Join(where.Cache(), "version.json"),
			Lifetime:   time.Hour,
			FileSystem: filesystem.CacheFS{},
		})

		Convey("Then the tag should be returned without its prefix", func() {
			version, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.4.2")

			Convey("And a second lookup should be served from the cache", func() {
				version, err := Latest(context.Background())
				So(err, ShouldBeNil)
				So(version, ShouldEqual, "1.4.2")
				So(hits.Load(), ShouldEqual, 1)
			})
		})
	})
}
