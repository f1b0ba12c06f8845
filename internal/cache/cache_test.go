package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/where"
)

func init() {
	filesystem.SetMemMapFs()
}

type entry struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func TestCache(t *testing.T) {
	Convey("Given an empty page cache", t, func() {
		key := GenerateKey("https://example.com/watch?v=1", "GET")

		Convey("Keys are deterministic and whitespace insensitive", func() {
			So(GenerateKey("https://example.com/watch?v=1 ", "GET"), ShouldEqual, key)
			So(GenerateKey("https://example.com/watch?v=1", "POST"), ShouldNotEqual, key)
		})

		Convey("A missing entry reads as none", func() {
			So(Read[entry](GenerateKey("missing", "GET")).IsPresent(), ShouldBeFalse)
		})

		Convey("A written entry reads back", func() {
			So(Write(key, entry{Status: 200, Body: "<html>"}), ShouldBeNil)

			got, ok := Read[entry](key).Get()
			So(ok, ShouldBeTrue)
			So(got.Status, ShouldEqual, 200)
			So(got.Body, ShouldEqual, "<html>")
		})

		Convey("Expired entries are ignored and collected", func() {
			So(Write(key, entry{Status: 200}), ShouldBeNil)
			path := filepath.Join(where.Pages(), key)
			old := time.Now().Add(-2 * TTL)
			So(filesystem.API().Chtimes(path, old, old), ShouldBeNil)

			So(Read[entry](key).IsPresent(), ShouldBeFalse)

			CollectGarbage()
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
		})
	})
}
