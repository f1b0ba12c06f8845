// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Resolver function identifiers - the global functions a Lua site script exposes.
const (
	MatchFn      = "Match"
	VideoInfoFn  = "VideoInfo"
	ResolveURIFn = "ResolveURI"
)

// SourceTemplate is a Go text/template for scaffolding new Lua site scripts.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias video { url: string, title: string, format: string, site: string }
---@alias info { title: string, format: string|nil, site: string|nil, headers: table|nil }


----- IMPORTS -----
--- END IMPORTS ---



----- MAIN -----

--- Reports whether this script handles the given page.
-- @param url string Page URL
-- @return boolean
function {{ .MatchFn }}(url)
	return url:find("{{ .URL }}", 1, true) ~= nil
end


--- Describes the video behind a page.
-- @param url string Page URL
-- @return info
function {{ .VideoInfoFn }}(url)
	return { title = url }
end


--- Resolves the current direct download URI.
-- @param video video
-- @return string
function {{ .ResolveURIFn }}(video)
	error("not implemented")
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
