package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/key"
)

func isDir(path string) bool {
	return lo.Must(filesystem.API().IsDir(path))
}

func TestDirectories(t *testing.T) {
	filesystem.SetMemMapFs()

	Convey("Given the default layout", t, func() {
		for name, dir := range map[string]func() string{
			"config":  Config,
			"cache":   Cache,
			"logs":    Logs,
			"sources": Sources,
			"pages":   Pages,
			"temp":    Temp,
		} {
			Convey(name+" exists after it is resolved", func() {
				So(isDir(dir()), ShouldBeTrue)
			})
		}

		Convey("Nested directories live under their parent", func() {
			So(filepath.Dir(Sources()), ShouldEqual, Config())
			So(filepath.Dir(Pages()), ShouldEqual, Cache())
			So(filepath.Dir(History()), ShouldEqual, Config())
		})
	})

	Convey("Given VIDKIT_CONFIG_PATH", t, func() {
		t.Setenv(EnvConfigPath, "/custom/vidkit")
		So(Config(), ShouldEqual, "/custom/vidkit")
		So(Logs(), ShouldEqual, "/custom/vidkit/logs")
	})
}

func TestDownloads(t *testing.T) {
	filesystem.SetMemMapFs()

	Convey("Given no download directory", t, func() {
		viper.Set(key.DownloadDirectory, "")
		path := Downloads()
		So(filepath.Base(path), ShouldEqual, constant.App)
		So(isDir(path), ShouldBeTrue)
	})

	Convey("Given a configured download directory", t, func() {
		viper.Set(key.DownloadDirectory, "/videos/out")
		defer viper.Set(key.DownloadDirectory, "")
		So(Downloads(), ShouldEqual, "/videos/out")
		So(isDir("/videos/out"), ShouldBeTrue)
	})
}
