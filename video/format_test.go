package video

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Extension", t, func() {
		expected := map[Format]string{
			Flash:   ".flv",
			Mobile:  ".3gp",
			Mp4:     ".mp4",
			WebM:    ".webm",
			Unknown: "",
		}

		Convey("Every declared format has its documented extension", func() {
			for _, f := range Formats() {
				ext, err := f.Extension()
				So(err, ShouldBeNil)
				So(ext, ShouldEqual, expected[f])
			}
		})

		Convey("Only Unknown maps to an empty extension", func() {
			for _, f := range Formats() {
				ext := lookupExtension(f)
				if f == Unknown {
					So(ext, ShouldBeEmpty)
				} else {
					So(ext, ShouldNotBeEmpty)
				}
			}
		})

		Convey("An undeclared format is a defect", func() {
			_, err := Format(42).Extension()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrUnrecognizedFormat), ShouldBeTrue)

			var fe *FormatError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Format, ShouldEqual, Format(42))
		})
	})

	Convey("ParseFormat", t, func() {
		So(ParseFormat("mp4"), ShouldEqual, Mp4)
		So(ParseFormat(".WEBM"), ShouldEqual, WebM)
		So(ParseFormat("flv"), ShouldEqual, Flash)
		So(ParseFormat("3gp"), ShouldEqual, Mobile)
		So(ParseFormat("mobile"), ShouldEqual, Mobile)
		So(ParseFormat(""), ShouldEqual, Unknown)
		So(ParseFormat("mkv"), ShouldEqual, Unknown)
	})

	Convey("String", t, func() {
		So(Mp4.String(), ShouldEqual, "mp4")
		So(Format(42).String(), ShouldEqual, "format(42)")
	})
}

func TestWebSite(t *testing.T) {
	Convey("ParseWebSite", t, func() {
		for _, w := range WebSites() {
			parsed, ok := ParseWebSite(w.String())
			So(ok, ShouldBeTrue)
			So(parsed, ShouldEqual, w)
		}

		parsed, ok := ParseWebSite("myspace")
		So(ok, ShouldBeFalse)
		So(parsed, ShouldEqual, Custom)
	})
}

func lookupExtension(f Format) string {
	ext, _ := f.Extension()
	return ext
}
