package custom

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/internal/scraper"
	"github.com/vidkit/vidkit/video"
)

func init() {
	filesystem.SetMemMapFs()
}

const script = `
function Match(url)
	return url:find("/watch/", 1, true) ~= nil
end

function VideoInfo(url)
	local page = http_tls.get(url)
	local title = page:match("<title>(.-)</title>")
	return { title = title, format = "mp4", site = "dailymotion", headers = { Referer = url } }
end

function ResolveURI(video)
	if video.title == "Removed" then
		error("video unavailable")
	end
	return video.url:gsub("/watch/", "/media/") .. ".mp4?sig=abc"
end
`

func writeScript(name, body string) string {
	path := "/sources/" + name + ".lua"
	if err := filesystem.API().WriteFile(path, []byte(body), 0644); err != nil {
		panic(err)
	}
	scraper.Forget(path)
	return path
}

func TestLoadSource(t *testing.T) {
	Convey("Given a page server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasPrefix(r.URL.Path, "/watch/gone"):
				_, _ = io.WriteString(w, "<html><title>Removed</title></html>")
			case strings.HasPrefix(r.URL.Path, "/watch/"):
				_, _ = io.WriteString(w, "<html><title>Ocean: Deep?</title></html>")
			default:
				_, _ = io.WriteString(w, "media")
			}
		}))
		defer server.Close()

		src, err := LoadSource(writeScript("dailyish", script))
		So(err, ShouldBeNil)

		Convey("Name and ID come from the file name", func() {
			So(src.Name(), ShouldEqual, "dailyish")
			So(src.ID(), ShouldEqual, "dailyish custom")
		})

		Convey("Match delegates to the script", func() {
			So(src.Match(&url.URL{Scheme: "http", Host: "x", Path: "/watch/1"}), ShouldBeTrue)
			So(src.Match(&url.URL{Scheme: "http", Host: "x", Path: "/about"}), ShouldBeFalse)
		})

		Convey("Discover scrapes the page", func() {
			site, err := src.Discover(context.Background(), server.URL+"/watch/42")
			So(err, ShouldBeNil)
			So(site.Title(), ShouldEqual, "Ocean: Deep?")
			So(site.Format(), ShouldEqual, video.Mp4)
			So(site.WebSite(), ShouldEqual, video.Dailymotion)

			Convey("and the script resolves the uri", func() {
				uri, err := site.ResolveURI(context.Background())
				So(err, ShouldBeNil)
				So(uri, ShouldEqual, server.URL+"/media/42.mp4?sig=abc")
			})

			Convey("and a handle over it fetches and names the video", func() {
				h, err := video.New(site, video.WithTransport(server.Client()))
				So(err, ShouldBeNil)
				defer h.Close()

				So(h.FullName(), ShouldEqual, "Ocean_ Deep_.mp4")
				data, err := h.Bytes()
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "media")
			})
		})

		Convey("A script error surfaces as a resolution error", func() {
			site, err := src.Discover(context.Background(), server.URL+"/watch/gone")
			So(err, ShouldBeNil)

			h, err := video.New(site, video.WithTransport(server.Client()))
			So(err, ShouldBeNil)
			defer h.Close()

			_, err = h.Bytes()
			So(errors.Is(err, video.ErrResolution), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "video unavailable")
		})
	})

	Convey("A script missing ResolveURI is rejected", t, func() {
		_, err := LoadSource(writeScript("partial", `function VideoInfo(url) return { title = "x" } end`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "ResolveURI")
	})

	Convey("A script without Match matches nothing", t, func() {
		src, err := LoadSource(writeScript("nomatch", `
function VideoInfo(url) return { title = "x" } end
function ResolveURI(video) return video.url end
`))
		So(err, ShouldBeNil)
		So(src.Match(&url.URL{Scheme: "https", Host: "example.com"}), ShouldBeFalse)
	})
}
