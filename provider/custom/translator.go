package custom

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"github.com/vidkit/vidkit/video"
	lua "github.com/yuin/gopher-lua"
)

// scriptedVideo is a site whose URI is resolved by the script that discovered it.
type scriptedVideo struct {
	source  *luaSource
	pageURL string
	title   string
	site    video.WebSite
	format  video.Format
	headers map[string]string
}

func (v *scriptedVideo) Title() string              { return v.title }
func (v *scriptedVideo) WebSite() video.WebSite     { return v.site }
func (v *scriptedVideo) Format() video.Format       { return v.format }
func (v *scriptedVideo) Headers() map[string]string { return v.headers }

func (v *scriptedVideo) ResolveURI(ctx context.Context) (string, error) {
	return v.source.resolve(ctx, v)
}

// optString returns the string field key of table, if set and non-empty.
func optString(table *lua.LTable, key string) mo.Option[string] {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString && val.String() != "" {
		return mo.Some(val.String())
	}
	return mo.None[string]()
}

func videoFromTable(src *luaSource, table *lua.LTable, pageURL string) (*scriptedVideo, error) {
	title, ok := optString(table, "title").Get()
	if !ok {
		return nil, fmt.Errorf("video must have title")
	}

	v := &scriptedVideo{
		source:  src,
		pageURL: pageURL,
		title:   title,
		site:    video.Custom,
		format:  video.ParseFormat(optString(table, "format").OrEmpty()),
		headers: make(map[string]string),
	}

	if name, ok := optString(table, "site").Get(); ok {
		if site, known := video.ParseWebSite(name); known {
			v.site = site
		}
	}

	headersTbl := table.RawGetString("headers")
	if headersTbl.Type() == lua.LTTable {
		headersTbl.(*lua.LTable).ForEach(func(k, val lua.LValue) {
			v.headers[k.String()] = val.String()
		})
	}

	return v, nil
}

func videoToTable(L *lua.LState, v *scriptedVideo) *lua.LTable {
	table := L.NewTable()
	table.RawSetString("url", lua.LString(v.pageURL))
	table.RawSetString("title", lua.LString(v.title))
	table.RawSetString("format", lua.LString(v.format.String()))
	table.RawSetString("site", lua.LString(v.site.String()))
	return table
}
