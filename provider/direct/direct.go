// Package direct implements the built-in source for URLs that already point at a video file.
package direct

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/vidkit/vidkit/util"
	"github.com/vidkit/vidkit/video"
)

// Name of the built-in direct source.
const Name = "direct"

// Source matches URLs whose path ends in a known video extension.
type Source struct{}

func (Source) Name() string { return Name }
func (Source) ID() string   { return Name + " builtin" }

func (Source) Match(u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return video.ParseFormat(path.Ext(u.Path)) != video.Unknown
}

func (s Source) Discover(ctx context.Context, rawURL string) (video.Site, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if !s.Match(u) {
		return nil, fmt.Errorf("%s is not a direct video url", rawURL)
	}

	return &Video{
		title:  titleOf(u),
		format: video.ParseFormat(path.Ext(u.Path)),
		uri:    u.String(),
	}, nil
}

// Video is a site whose direct URI is the page URL itself.
type Video struct {
	title  string
	format video.Format
	uri    string
}

func (v *Video) Title() string          { return v.title }
func (v *Video) WebSite() video.WebSite { return video.Direct }
func (v *Video) Format() video.Format   { return v.format }

func (v *Video) ResolveURI(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return v.uri, nil
}

// titleOf derives a title from the file name in u, falling back to the host.
func titleOf(u *url.URL) string {
	name := util.FileStem(path.Base(u.Path))
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return u.Host
	}
	return name
}
