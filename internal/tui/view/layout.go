package view

import "github.com/charmbracelet/lipgloss"

// Gutter is the space between the form and the toast stack.
const Gutter = 2

// minSideWidth is the narrowest stack placed beside the form. Anything
// narrower is stacked below it at full width.
const minSideWidth = 20

// Body places left and right side by side when they fit in width, and
// stacks them otherwise. A zero width means unknown and always fits.
func Body(left, right string, width int) string {
	if right == "" {
		return left
	}
	if width > 0 && lipgloss.Width(left)+Gutter+lipgloss.Width(right) > width {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	spacer := lipgloss.NewStyle().Width(Gutter).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}

// StackWidth returns the toast width that fits next to a left column of
// leftWidth in a terminal of width, capped at limit. When there is no room
// beside the form the stack goes below it and may use the full width.
func StackWidth(width, leftWidth, limit int) int {
	if width <= 0 {
		return limit
	}
	avail := width - leftWidth - Gutter
	if avail < minSideWidth {
		return min(width, limit)
	}
	return min(avail, limit)
}
