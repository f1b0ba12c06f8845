// Package custom provides a bridge between the Go core and Lua-based site resolver scripts.
package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/internal/scraper"
	"github.com/vidkit/vidkit/source"
	"github.com/vidkit/vidkit/util"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName generates a canonical source identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource initializes a new source.Source by executing and validating a Lua resolver script.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	// Load and compile the Lua script (using cache if available).
	err := scraper.PreCompileAndLoad(state, path)
	if err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	required := []string{
		constant.VideoInfoFn,
		constant.ResolveURIFn,
	}

	for _, fn := range required {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			state.Close()
			return nil, fmt.Errorf("function %s is required but not defined in %s", fn, name)
		}
	}

	return newLuaSource(name, state), nil
}
