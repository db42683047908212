// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// PaneID identifies one of the two editor panes.
type PaneID string

const (
	PaneMain      PaneID = "main"
	PaneSecondary PaneID = "secondary"
)

// PaneIDs lists every pane in a stable order.
var PaneIDs = []PaneID{PaneMain, PaneSecondary}

// Valid reports whether id names a known pane.
func (id PaneID) Valid() bool {
	return id == PaneMain || id == PaneSecondary
}

// PaneStatus is the lifecycle state of a pane.
type PaneStatus int

const (
	PaneEmpty   PaneStatus = iota // No editor
	PaneLoading                   // Editor under construction
	PaneBound                     // Editor bound to a file
)

func (s PaneStatus) String() string {
	switch s {
	case PaneEmpty:
		return "empty"
	case PaneLoading:
		return "loading"
	case PaneBound:
		return "bound"
	default:
		return "unknown"
	}
}

// NavigationTarget is the resolved destination of a navigation request.
type NavigationTarget int

const (
	TargetMain NavigationTarget = iota
	TargetSecondary
	TargetNewTab
)

func (t NavigationTarget) String() string {
	switch t {
	case TargetMain:
		return "main"
	case TargetSecondary:
		return "secondary"
	case TargetNewTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Pane returns the pane a target resolves to. NewTab has no pane.
func (t NavigationTarget) Pane() (PaneID, bool) {
	switch t {
	case TargetMain:
		return PaneMain, true
	case TargetSecondary:
		return PaneSecondary, true
	default:
		return "", false
	}
}

// TargetForPane returns the navigation target that lands in pane id.
func TargetForPane(id PaneID) NavigationTarget {
	if id == PaneSecondary {
		return TargetSecondary
	}
	return TargetMain
}

// Modifiers are the key modifiers held when a navigation event fired.
type Modifiers struct {
	CtrlOrMeta bool
	Shift      bool
}
