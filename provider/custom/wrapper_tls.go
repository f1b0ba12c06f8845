// The http_tls module gives Lua resolver scripts a TLS-fingerprinted HTTP client.
//
// registerTLSClient injects an "http_tls" module backed by network.Do, which
// presents Chrome's Client Hello. Hosting sites behind anti-bot challenges
// reject the standard Go TLS handshake, so scripts scraping watch pages
// should prefer it over the plain http module.
//
// Lua API:
//
//	http_tls.get(url)              → returns body string
//	http_tls.get(url, headers_tbl) → returns body string with custom headers
//	http_tls.request(options_tbl)  → returns {status, body}
//
// request accepts {method, url, headers, body, cache}. With cache = true a
// successful page body is kept in the page cache for an hour. Resolved URIs
// must never be passed through it, they expire.

package custom

import (
	"context"
	"net/http"

	"github.com/vidkit/vidkit/internal/cache"
	"github.com/vidkit/vidkit/network"
	lua "github.com/yuin/gopher-lua"
)

// registerTLSClient injects the "http_tls" global module into the Lua state.
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()

	// http_tls.get(url [, headers_table]) → body_string
	L.SetField(mod, "get", L.NewFunction(httpTLSGet))

	// http_tls.request({method, url, headers, body, cache}) → {status, body}
	L.SetField(mod, "request", L.NewFunction(httpTLSRequest))

	L.SetGlobal("http_tls", mod)
}

// stateContext returns the context the running script was called with.
func stateContext(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// httpTLSGet implements http_tls.get(url [, headers]) → body string
func httpTLSGet(L *lua.LState) int {
	url := L.CheckString(1)
	headers := headersFromTable(L.OptTable(2, nil))

	body, _, err := network.Do(stateContext(L), http.MethodGet, url, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}

	L.Push(lua.LString(body))
	return 1
}

// pageEntry is the cached form of a fetched page.
type pageEntry struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// httpTLSRequest implements http_tls.request(options) → {status, body}
func httpTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	method := getStringField(opts, "method", http.MethodGet)
	url := getStringField(opts, "url", "")
	reqBody := getStringField(opts, "body", "")

	if url == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	shouldCache := lua.LVAsBool(opts.RawGetString("cache"))

	var headers map[string]string
	if tbl, ok := opts.RawGetString("headers").(*lua.LTable); ok {
		headers = headersFromTable(tbl)
	}

	var cacheKey string
	if shouldCache {
		cacheKey = cache.GenerateKey(url+reqBody, method)
		if entry, ok := cache.Read[pageEntry](cacheKey).Get(); ok {
			L.Push(responseTable(L, entry))
			return 1
		}
	}

	respBody, statusCode, err := network.Do(stateContext(L), method, url, headers, reqBody)
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	entry := pageEntry{Status: statusCode, Body: respBody}
	if shouldCache && statusCode == http.StatusOK {
		_ = cache.Write(cacheKey, entry)
	}

	L.Push(responseTable(L, entry))
	return 1
}

func responseTable(L *lua.LState, entry pageEntry) *lua.LTable {
	result := L.NewTable()
	L.SetField(result, "status", lua.LNumber(entry.Status))
	L.SetField(result, "body", lua.LString(entry.Body))
	return result
}

func headersFromTable(tbl *lua.LTable) map[string]string {
	headers := make(map[string]string)
	if tbl == nil {
		return headers
	}
	tbl.ForEach(func(k, v lua.LValue) {
		headers[k.String()] = v.String()
	})
	return headers
}

// getStringField is a helper to get a string field from a Lua table with a default.
func getStringField(tbl *lua.LTable, key string, def string) string {
	val := tbl.RawGetString(key)
	if val == lua.LNil {
		return def
	}
	return val.String()
}
