package scraper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidkit/vidkit/filesystem"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPreCompileAndLoad(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		path := "/sources/answer.lua"
		So(filesystem.API().WriteFile(path, []byte(`answer = 42`), 0644), ShouldBeNil)
		Forget(path)

		Convey("It runs and defines its globals", func() {
			L := lua.NewState()
			defer L.Close()

			So(PreCompileAndLoad(L, path), ShouldBeNil)
			So(L.GetGlobal("answer").String(), ShouldEqual, "42")
		})

		Convey("The compiled form is reused until forgotten", func() {
			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, path), ShouldBeNil)

			So(filesystem.API().WriteFile(path, []byte(`answer = 7`), 0644), ShouldBeNil)

			cached := lua.NewState()
			defer cached.Close()
			So(PreCompileAndLoad(cached, path), ShouldBeNil)
			So(cached.GetGlobal("answer").String(), ShouldEqual, "42")

			Forget(path)
			fresh := lua.NewState()
			defer fresh.Close()
			So(PreCompileAndLoad(fresh, path), ShouldBeNil)
			So(fresh.GetGlobal("answer").String(), ShouldEqual, "7")
		})

		Convey("A syntax error is reported", func() {
			broken := "/sources/broken.lua"
			So(filesystem.API().WriteFile(broken, []byte(`function (`), 0644), ShouldBeNil)

			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, broken), ShouldNotBeNil)
		})
	})
}
