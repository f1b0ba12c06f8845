package custom

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/video"
	lua "github.com/yuin/gopher-lua"
)

type luaSource struct {
	name string

	// mu serializes access to state, an LState is not safe for concurrent use.
	mu    sync.Mutex
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{
		name:  name,
		state: state,
	}
}

// Name returns the script name.
func (s *luaSource) Name() string {
	return s.name
}

// ID returns the source ID.
func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

// Match calls the optional Match function of the script.
// Scripts without one only handle URLs they are explicitly selected for.
func (s *luaSource) Match(u *url.URL) bool {
	s.mu.Lock()
	defined := s.state.GetGlobal(constant.MatchFn).Type() == lua.LTFunction
	s.mu.Unlock()
	if !defined {
		return false
	}

	val, err := s.call(context.Background(), constant.MatchFn, lua.LTBool, lua.LString(u.String()))
	if err != nil {
		log.Warnf("%s: %v", s.name, err)
		return false
	}
	return lua.LVAsBool(val)
}

// Discover calls VideoInfo to describe the video behind rawURL.
func (s *luaSource) Discover(ctx context.Context, rawURL string) (video.Site, error) {
	val, err := s.call(ctx, constant.VideoInfoFn, lua.LTTable, lua.LString(rawURL))
	if err != nil {
		return nil, err
	}

	return videoFromTable(s, val.(*lua.LTable), rawURL)
}

// resolve calls ResolveURI for v.
func (s *luaSource) resolve(ctx context.Context, v *scriptedVideo) (string, error) {
	s.mu.Lock()
	table := videoToTable(s.state, v)
	s.mu.Unlock()

	val, err := s.call(ctx, constant.ResolveURIFn, lua.LTString, table)
	if err != nil {
		return "", err
	}
	return val.String(), nil
}

// call executes a global Lua function safely, bound to ctx.
func (s *luaSource) call(ctx context.Context, fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", s.name, fn, err)
	}

	retval := s.state.Get(-1)
	s.state.Pop(1) // Clean stack

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s: %s returned %s, expected %s", s.name, fn, retval.Type(), retType)
	}

	return retval, nil
}
