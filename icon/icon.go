// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/key"
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var variants = map[string]func(*iconDef) string{
	"emoji":   func(d *iconDef) string { return d.emoji },
	"nerd":    func(d *iconDef) string { return d.nerd },
	"plain":   func(d *iconDef) string { return d.plain },
	"kaomoji": func(d *iconDef) string { return d.kaomoji },
	"squares": func(d *iconDef) string { return d.squares },
}

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{"emoji", "nerd", "plain", "kaomoji", "squares"}
}

// Get renders i in the configured variant. Unknown variants and icons render as "".
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	pick, ok := variants[viper.GetString(key.IconsVariant)]
	if !ok {
		return ""
	}

	return pick(def)
}

// IsVariant reports whether v names a known variant.
func IsVariant(v string) bool {
	return lo.Contains(AvailableVariants(), v)
}
