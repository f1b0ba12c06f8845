package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/video"
	"github.com/vidkit/vidkit/where"
)

const testScript = `
function Match(url)
	return url:find("example.test", 1, true) ~= nil
end

function VideoInfo(url)
	return { title = "Scripted", format = "webm" }
end

function ResolveURI(video)
	return "` + "%s" + `/scripted.webm"
end
`

func TestGet(t *testing.T) {
	filesystem.SetMemMapFs()

	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When trying to get the direct provider", t, func() {
		p, ok := Get("direct")
		Convey("Then it should be found among the builtins", func() {
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeFalse)
			So(p.String(), ShouldEqual, "direct")
		})
	})

	Convey("When a provider name is misspelled", t, func() {
		closest, ok := Suggest("dir")
		Convey("Then the closest name should be suggested", func() {
			So(ok, ShouldBeTrue)
			So(closest, ShouldEqual, "direct")
		})
	})
}

func TestDiscover(t *testing.T) {
	filesystem.SetMemMapFs()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, r.URL.Path)
	}))
	defer server.Close()

	Convey("Given a direct video url", t, func() {
		h, err := Discover(context.Background(), server.URL+"/clips/Sunset%20Drive.mp4")
		So(err, ShouldBeNil)
		defer h.Close()

		Convey("Then the handle should describe the file", func() {
			So(h.Title(), ShouldEqual, "Sunset Drive")
			So(h.WebSite(), ShouldEqual, video.Direct)
			So(h.FullName(), ShouldEqual, "Sunset Drive.mp4")
		})

		Convey("Then its bytes should come from the url", func() {
			data, err := h.Bytes()
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "/clips/Sunset Drive.mp4")
		})
	})

	Convey("Given a url nothing handles", t, func() {
		_, err := Discover(context.Background(), "https://example.org/watch?v=1")

		Convey("Then ErrNoProvider should be returned", func() {
			So(errors.Is(err, ErrNoProvider), ShouldBeTrue)
		})
	})

	Convey("Given a custom script in the sources directory", t, func() {
		path := filepath.Join(where.Sources(), "scripted.lua")
		So(filesystem.API().WriteFile(path, []byte(fmt.Sprintf(testScript, server.URL)), 0644), ShouldBeNil)
		defer func() { _ = filesystem.API().Remove(path) }()

		Convey("Then it should be listed as a custom provider", func() {
			p, ok := Get("scripted")
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeTrue)
		})

		Convey("Then it should handle the urls it matches", func() {
			h, err := Discover(context.Background(), "https://example.test/watch/1")
			So(err, ShouldBeNil)
			defer h.Close()

			So(h.FullName(), ShouldEqual, "Scripted.webm")

			uri, err := h.URI()
			So(err, ShouldBeNil)
			So(uri, ShouldEqual, server.URL+"/scripted.webm")
		})

		Convey("Then it can be selected explicitly", func() {
			h, err := DiscoverWith(context.Background(), "scripted", "https://other.test/1")
			So(err, ShouldBeNil)
			defer h.Close()
			So(h.Title(), ShouldEqual, "Scripted")
		})
	})

	Convey("Given an unknown provider name", t, func() {
		_, err := DiscoverWith(context.Background(), "dirc", "https://example.org/a.mp4")

		Convey("Then the error should suggest a known one", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean direct")
		})
	})
}

func TestInstall(t *testing.T) {
	filesystem.SetMemMapFs()

	script := fmt.Sprintf(testScript, "https://cdn.example.test")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/remote.lua" {
			http.NotFound(w, r)
			return
		}
		_, _ = fmt.Fprint(w, script)
	}))
	defer server.Close()

	Convey("Given a remote script", t, func() {
		target, updated, err := Install(context.Background(), server.URL+"/remote.lua")

		Convey("Then it should be written to the sources directory", func() {
			So(err, ShouldBeNil)
			So(updated, ShouldBeTrue)
			So(target, ShouldEqual, filepath.Join(where.Sources(), "remote.lua"))

			contents, err := filesystem.API().ReadFile(target)
			So(err, ShouldBeNil)
			So(string(contents), ShouldEqual, script)

			Convey("And installing it again should change nothing", func() {
				_, updated, err := Install(context.Background(), server.URL+"/remote.lua")
				So(err, ShouldBeNil)
				So(updated, ShouldBeFalse)
			})
		})
	})

	Convey("Given a url that is not a script", t, func() {
		_, _, err := Install(context.Background(), server.URL+"/remote.txt")
		So(err, ShouldNotBeNil)
	})

	Convey("Given a missing script", t, func() {
		_, _, err := Install(context.Background(), server.URL+"/missing.lua")
		So(err, ShouldNotBeNil)
	})
}

func TestDescribe(t *testing.T) {
	filesystem.SetMemMapFs()

	Convey("Given a handle for a direct url", t, func() {
		page := "https://cdn.example.org/v/Trailer.webm"
		h, err := Discover(context.Background(), page)
		So(err, ShouldBeNil)
		defer h.Close()

		Convey("When it is described without resolving", func() {
			info, err := Describe(context.Background(), page, h, false)
			So(err, ShouldBeNil)

			Convey("Then the static fields should be filled and the uri omitted", func() {
				So(info.Title, ShouldEqual, "Trailer")
				So(info.Site, ShouldEqual, video.Direct.String())
				So(info.Format, ShouldEqual, video.WebM.String())
				So(info.FileName, ShouldEqual, "Trailer.webm")

				data, err := info.JSON()
				So(err, ShouldBeNil)
				So(string(data), ShouldNotContainSubstring, `"uri"`)
			})
		})

		Convey("When it is described with resolving", func() {
			info, err := Describe(context.Background(), page, h, true)
			So(err, ShouldBeNil)
			So(info.URI, ShouldEqual, page)
		})
	})
}
