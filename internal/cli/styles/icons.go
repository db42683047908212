package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFile    = "\uf15b" // file
	IconLink    = "\uf0c1" // link
	IconConfig  = "\ue615" // config
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconTrash   = "\uf1f8" // trash
	IconCursor  = "\u25b8" // small right triangle
)

const (
	cursorSelected = IconCursor + " "
	cursorEmpty    = "  "
)
