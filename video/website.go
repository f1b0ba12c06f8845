package video

import "strings"

// WebSite is the platform that serves a video and decides how its URI is resolved.
type WebSite int

const (
	YouTube WebSite = iota
	Vimeo
	Dailymotion
	Direct
	Custom
)

var webSiteNames = []string{
	YouTube:     "youtube",
	Vimeo:       "vimeo",
	Dailymotion: "dailymotion",
	Direct:      "direct",
	Custom:      "custom",
}

// WebSites returns every known hosting site.
func WebSites() []WebSite {
	return []WebSite{YouTube, Vimeo, Dailymotion, Direct, Custom}
}

func (w WebSite) String() string {
	if int(w) >= 0 && int(w) < len(webSiteNames) {
		return webSiteNames[w]
	}
	return "custom"
}

// ParseWebSite returns the site named s. The second value is false when s is not a known site.
func ParseWebSite(s string) (WebSite, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range webSiteNames {
		if name == s {
			return WebSite(i), true
		}
	}
	return Custom, false
}
