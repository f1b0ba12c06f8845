package provider

import (
	"context"
	"encoding/json"

	"github.com/vidkit/vidkit/video"
)

// Info is the machine readable description of a video printed by `vidkit info --json`.
type Info struct {
	Page     string `json:"page" jsonschema:"description=Page url the video was discovered on."`
	Title    string `json:"title" jsonschema:"description=Title of the video as reported by the site."`
	Site     string `json:"site" jsonschema:"description=Hosting site of the video."`
	Format   string `json:"format" jsonschema:"description=Container format of the video."`
	FileName string `json:"fileName" jsonschema:"description=Filesystem safe name the video is saved under."`
	// URI is only present when resolution was requested.
	URI      string `json:"uri,omitempty" jsonschema:"description=Direct download uri. Signed uris expire so this may stop working."`
}

// Describe collects Info for h, resolving the direct uri when resolve is set.
func Describe(ctx context.Context, page string, h *video.Handle, resolve bool) (*Info, error) {
	info := &Info{
		Page:     page,
		Title:    h.Title(),
		Site:     h.WebSite().String(),
		Format:   h.Format().String(),
		FileName: h.FullName(),
	}

	if resolve {
		uri, err := h.ResolveURI(ctx)
		if err != nil {
			return nil, err
		}
		info.URI = uri
	}

	return info, nil
}

func (i *Info) JSON() ([]byte, error) {
	return json.Marshal(i)
}
