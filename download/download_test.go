package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/provider/direct"
	"github.com/vidkit/vidkit/video"
)

var content = strings.Repeat("frame", 2000)

func newServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/missing") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		_, _ = w.Write([]byte(content))
	}))
}

func newHandle(rawURL string) *video.Handle {
	site, err := direct.Source{}.Discover(context.Background(), rawURL)
	So(err, ShouldBeNil)

	h, err := video.New(site)
	So(err, ShouldBeNil)
	return h
}

func TestSave(t *testing.T) {
	server := newServer()
	defer server.Close()

	Convey("Given a handle and an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		h := newHandle(server.URL + "/media/Night:%20Drive.mp4")
		defer h.Close()

		opts := Options{Dir: "/videos"}

		Convey("Target should join the directory and the sanitized name", func() {
			So(Target(h, opts), ShouldEqual, filepath.Join("/videos", "Night_ Drive.mp4"))
		})

		for _, stream := range []bool{false, true} {
			opts := opts
			opts.Stream = stream

			name := "buffered"
			if stream {
				name = "streamed"
			}

			Convey("When the video is saved "+name, func() {
				var last, total int64
				opts.Progress = func(w, t int64) { last, total = w, t }

				path, err := Save(context.Background(), h, opts)

				Convey("Then the file should hold the full content", func() {
					So(err, ShouldBeNil)
					So(path, ShouldEqual, Target(h, opts))

					data, err := fs.ReadFile(path)
					So(err, ShouldBeNil)
					So(string(data), ShouldEqual, content)
				})

				Convey("Then progress should reach the total", func() {
					So(last, ShouldEqual, len(content))
					So(total, ShouldEqual, len(content))
				})

				Convey("Then no partial file should be left", func() {
					exists, _ := fs.Exists(path + PartialExtension)
					So(exists, ShouldBeFalse)
				})
			})
		}

		Convey("When the target already exists", func() {
			So(fs.WriteFile(Target(h, opts), []byte("old"), 0644), ShouldBeNil)

			Convey("Then Save should refuse to overwrite it", func() {
				_, err := Save(context.Background(), h, opts)
				So(errors.Is(err, ErrExists), ShouldBeTrue)

				data, _ := fs.ReadFile(Target(h, opts))
				So(string(data), ShouldEqual, "old")
			})

			Convey("Then Save should replace it when overwriting is enabled", func() {
				opts.Overwrite = true
				path, err := Save(context.Background(), h, opts)
				So(err, ShouldBeNil)

				data, _ := fs.ReadFile(path)
				So(string(data), ShouldEqual, content)
			})
		})

		Convey("When the server rejects the request", func() {
			missing := newHandle(server.URL + "/missing/Clip.webm")
			defer missing.Close()

			_, err := Save(context.Background(), missing, Options{Dir: "/videos", Stream: true})

			Convey("Then a transport error should be returned and nothing written", func() {
				So(errors.Is(err, video.ErrTransport), ShouldBeTrue)

				for _, path := range []string{"/videos/Clip.webm", "/videos/Clip.webm" + PartialExtension} {
					exists, _ := fs.Exists(path)
					So(exists, ShouldBeFalse)
				}
			})
		})
	})
}

func TestFormatBytes(t *testing.T) {
	Convey("Byte counts should be human readable", t, func() {
		So(formatBytes(512), ShouldEqual, "512 B")
		So(formatBytes(1536), ShouldEqual, "1.5 KiB")
		So(formatBytes(5*1024*1024), ShouldEqual, "5.0 MiB")
	})
}
