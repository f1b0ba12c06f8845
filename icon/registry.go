package icon

import (
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/style"
)

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota + 1
	Go
	Fail
	Success
	Progress
	Download
	Link
	Question
	Warn
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    style.Fg(color.Blue)(""),
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "◧",
	},
	Go: {
		emoji:   "🐹",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   "Go",
		kaomoji: "ᕕ( ᐛ )ᕗ",
		squares: "◨",
	},
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(color.Red)(""),
		plain:   style.Fg(color.Red)("X"),
		kaomoji: style.Fg(color.Red)("(╥﹏╥)"),
		squares: style.Fg(color.Red)("▣"),
	},
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)("OK"),
		kaomoji: style.Fg(color.Green)("(ᵔ◡ᵔ)"),
		squares: style.Fg(color.Green)("▣"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("..."),
		kaomoji: style.Fg(color.Blue)("(・_・;)"),
		squares: style.Fg(color.Blue)("▢"),
	},
	Download: {
		emoji:   "📥",
		nerd:    style.Fg(color.Purple)(""),
		plain:   style.Fg(color.Purple)("DL"),
		kaomoji: style.Fg(color.Purple)("(っ˘ڡ˘ς)"),
		squares: style.Fg(color.Purple)("▼"),
	},
	Link: {
		emoji:   "🔗",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   style.Fg(color.Cyan)("->"),
		kaomoji: style.Fg(color.Cyan)("(☞ﾟヮﾟ)☞"),
		squares: style.Fg(color.Cyan)("▶"),
	},
	Question: {
		emoji:   "🤨",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("?"),
		kaomoji: style.Fg(color.Yellow)("(・・ ) ?"),
		squares: style.Fg(color.Yellow)("◩"),
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("!"),
		kaomoji: style.Fg(color.Yellow)("(・`ω´・)"),
		squares: style.Fg(color.Yellow)("◪"),
	},
}
