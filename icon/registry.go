package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Play Icon = iota + 1
	Pause
	Stop
	Next
	Note
	Clock
	Success
	Fail
	Progress
	Config
	History
	Trash
)

// icons maps every Icon identifier to its per-variant representations.
var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "♪(´▽｀)",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(-_-) zZ",
		squares: "▤",
	},
	Stop: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "x",
		kaomoji: "(￣^￣)",
		squares: "□",
	},
	Next: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(ノ≧∀≦)ノ",
		squares: "▸▸",
	},
	Note: {
		emoji:   "🎵",
		nerd:    "",
		plain:   "*",
		kaomoji: "♪♪",
		squares: "▣",
	},
	Clock: {
		emoji:   "🕒",
		nerd:    "",
		plain:   "@",
		kaomoji: "(・_・)ノ",
		squares: "▥",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(≧▽≦)",
		squares: "■",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "!",
		kaomoji: "(╯°□°)╯︵ ┻━┻",
		squares: "▢",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(￣ー￣)",
		squares: "▱",
	},
	Config: {
		emoji:   "⚙️",
		nerd:    "",
		plain:   "#",
		kaomoji: "(⌐■_■)",
		squares: "▧",
	},
	History: {
		emoji:   "📼",
		nerd:    "",
		plain:   "=",
		kaomoji: "(¬‿¬)",
		squares: "▦",
	},
	Trash: {
		emoji:   "🗑️",
		nerd:    "",
		plain:   "-",
		kaomoji: "(〜￣△￣)〜",
		squares: "▨",
	},
}
