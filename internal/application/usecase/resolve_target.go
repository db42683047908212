package usecase

import "github.com/bnema/crumbtrail/internal/domain/entity"

// TargetResolver decides which pane a navigation event lands in.
type TargetResolver struct{}

// NewTargetResolver creates a target resolver.
func NewTargetResolver() *TargetResolver {
	return &TargetResolver{}
}

// Resolve maps event modifiers to a navigation target.
//
// Ctrl/Meta always opens a new tab. Otherwise Shift selects the secondary pane
// unless sub-navigation is disabled. Events coming from the secondary pane
// swap Main and Secondary so an unmodified click stays in that pane.
func (r *TargetResolver) Resolve(mods entity.Modifiers, origin *entity.PaneID, subNavigationDisabled bool) entity.NavigationTarget {
	if mods.CtrlOrMeta {
		return entity.TargetNewTab
	}

	target := entity.TargetMain
	if mods.Shift && !subNavigationDisabled {
		target = entity.TargetSecondary
	}
	return r.ForOrigin(target, origin)
}

// ForOrigin applies the secondary-pane inversion to an already chosen target.
// NewTab is never inverted.
func (r *TargetResolver) ForOrigin(target entity.NavigationTarget, origin *entity.PaneID) entity.NavigationTarget {
	if origin == nil || *origin != entity.PaneSecondary {
		return target
	}
	switch target {
	case entity.TargetMain:
		return entity.TargetSecondary
	case entity.TargetSecondary:
		return entity.TargetMain
	default:
		return target
	}
}
