package config

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/where"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Setenv("VIDKIT_DOWNLOAD_STREAM", "false")

	Convey("Given no config file", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Then every registered key has a value", func() {
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Then environment variables override defaults", func() {
			So(viper.GetBool(key.DownloadStream), ShouldBeFalse)
			So(viper.GetBool(key.DownloadProgress), ShouldBeTrue)
		})
	})

	Convey("Given a config file in the config directory", t, func() {
		path := filepath.Join(where.Config(), constant.App+".toml")
		So(filesystem.API().WriteFile(path, []byte("[player]\napp = \"mpv\"\n"), 0o644), ShouldBeNil)

		So(Setup(), ShouldBeNil)
		So(viper.GetString(key.PlayerApp), ShouldEqual, "mpv")

		Reset(func() {
			viper.Reset()
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.NetworkTimeout]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "VIDKIT_NETWORK_TIMEOUT")
		})

		Convey("Pretty includes the key and description", func() {
			_ = Setup()
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.NetworkTimeout)
			So(pretty, ShouldContainSubstring, "Timeout")
		})

		Convey("MarshalJSON reports the default and the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
			So(string(data), ShouldContainSubstring, `"default":0`)
		})
	})
}
