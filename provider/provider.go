// Package provider manages built-in and custom site resolvers and turns page URLs into video handles.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/network"
	"github.com/vidkit/vidkit/provider/custom"
	"github.com/vidkit/vidkit/provider/direct"
	"github.com/vidkit/vidkit/source"
	"github.com/vidkit/vidkit/util"
	"github.com/vidkit/vidkit/video"
	"github.com/vidkit/vidkit/where"
)

// CustomProviderExtension is the file extension of Lua resolver scripts.
const CustomProviderExtension = ".lua"

// ErrNoProvider is returned by Discover when no provider handles a URL.
var ErrNoProvider = errors.New("no provider handles this url")

// Provider represents a site resolver.
type Provider struct {
	ID           string
	Name         string
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   direct.Source{}.ID(),
			Name: direct.Name,
			CreateSource: func() (source.Source, error) {
				return direct.Source{}, nil
			},
		},
	}
}

// Customs returns all available Lua providers.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warn(err)
	}
	return providers
}

// All returns every provider in discovery order: the configured default
// sources first, then custom scripts, then built-ins.
func All() []*Provider {
	all := append(Customs(), Builtins()...)
	preferred := viper.GetStringSlice(key.DefaultSources)

	rank := func(p *Provider) int {
		if i := lo.IndexOf(preferred, p.Name); i >= 0 {
			return i
		}
		return len(preferred)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return rank(all[i]) < rank(all[j])
	})
	return all
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return p.Name == name
	})
}

// Suggest returns the provider name closest to name, if any is close at all.
func Suggest(name string) (string, bool) {
	names := lo.Map(All(), func(p *Provider, _ int) string { return p.Name })
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != CustomProviderExtension {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}

// Discover finds the first provider whose source matches rawURL and returns a handle for the video.
func Discover(ctx context.Context, rawURL string) (*video.Handle, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	for _, p := range All() {
		src, err := p.CreateSource()
		if err != nil {
			log.Warnf("provider %s: %v", p.Name, err)
			continue
		}

		if !src.Match(u) {
			continue
		}

		log.Infof("provider %s matched %s", p.Name, rawURL)
		return discover(ctx, src, rawURL)
	}

	return nil, fmt.Errorf("%w: %s", ErrNoProvider, rawURL)
}

// DiscoverWith uses the named provider for rawURL without asking it to match first.
func DiscoverWith(ctx context.Context, name, rawURL string) (*video.Handle, error) {
	p, ok := Get(name)
	if !ok {
		if closest, found := Suggest(name); found {
			return nil, fmt.Errorf("unknown provider %s, did you mean %s?", name, closest)
		}
		return nil, fmt.Errorf("unknown provider %s", name)
	}

	src, err := p.CreateSource()
	if err != nil {
		return nil, err
	}
	return discover(ctx, src, rawURL)
}

func discover(ctx context.Context, src source.Source, rawURL string) (*video.Handle, error) {
	site, err := src.Discover(ctx, rawURL)
	if err != nil {
		return nil, &video.ResolutionError{Site: video.Custom, Err: err}
	}
	return NewHandle(site)
}

// NewHandle wraps site in a handle fetching through the configured transport.
func NewHandle(site video.Site) (*video.Handle, error) {
	return video.New(
		site,
		video.WithTransport(network.New()),
		video.WithUserAgent(viper.GetString(key.NetworkUserAgent)),
	)
}
