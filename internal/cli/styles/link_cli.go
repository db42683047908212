package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/crumbtrail/internal/domain/deeplink"
)

// LinkRenderer renders decoded deep links.
type LinkRenderer struct {
	theme *Theme
}

// NewLinkRenderer creates a link renderer with the given theme.
func NewLinkRenderer(theme *Theme) *LinkRenderer {
	return &LinkRenderer{theme: theme}
}

// RenderLink renders the fields of a decoded link.
// A non-nil warn is shown below, typically a malformed fragment.
func (r *LinkRenderer) RenderLink(link deeplink.Link, warn error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Subtle.Width(10)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s %s%s\n",
		iconStyle.Render(IconLink),
		labelStyle.Render("file"),
		r.theme.Highlight.Render(link.FilePath),
	))

	rng := r.theme.Subtle.Render("none")
	if link.Selection != nil {
		rng = r.theme.Normal.Render(deeplink.FormatRange(*link.Selection))
	}
	sb.WriteString(fmt.Sprintf("    %s%s\n", labelStyle.Render("range"), rng))

	if warn != nil {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.WarningStyle.Render(warn.Error()),
		))
	}
	return sb.String()
}
