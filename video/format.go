package video

import (
	"fmt"
	"strings"
)

// Format identifies the container a hosting site serves a video in.
type Format int

const (
	Unknown Format = iota
	Flash
	Mobile
	Mp4
	WebM
)

// extensions must cover every declared Format.
var extensions = map[Format]string{
	Unknown: "",
	Flash:   ".flv",
	Mobile:  ".3gp",
	Mp4:     ".mp4",
	WebM:    ".webm",
}

var formatNames = map[Format]string{
	Unknown: "unknown",
	Flash:   "flash",
	Mobile:  "mobile",
	Mp4:     "mp4",
	WebM:    "webm",
}

// Formats returns every declared format in declaration order.
func Formats() []Format {
	return []Format{Unknown, Flash, Mobile, Mp4, WebM}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Extension returns the file extension, including the leading dot, for f.
// Unknown maps to an empty extension.
func (f Format) Extension() (string, error) {
	ext, ok := extensions[f]
	if !ok {
		return "", &FormatError{Format: f}
	}
	return ext, nil
}

// ParseFormat maps a format name or file extension to a Format.
// Anything unrecognized is Unknown.
func ParseFormat(s string) Format {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Unknown
	}

	for f, name := range formatNames {
		if s == name {
			return f
		}
	}

	if !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	switch s {
	case ".flv", ".swf":
		return Flash
	case ".3gp", ".3gpp":
		return Mobile
	case ".mp4", ".m4v":
		return Mp4
	case ".webm":
		return WebM
	}

	return Unknown
}
