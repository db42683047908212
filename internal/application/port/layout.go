package port

// Layout toggles the containers that host the panes.
type Layout interface {
	// ShowSidePanel makes the side panel visible and returns its width in pixels.
	ShowSidePanel() int
	// HideSidePanel hides the side panel.
	HideSidePanel()
	// SetMainMarginRight resizes the main container next to the side panel.
	SetMainMarginRight(px int)
	// SetMainVisible shows or hides the main editor container.
	SetMainVisible(visible bool)
}
