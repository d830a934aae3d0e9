package toasts

import (
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Category glyphs.
const (
	IconInfo    = "ℹ"
	IconSuccess = "✓"
	IconError   = "✗"
)

// Visual describes how a toast of a given category is drawn.
type Visual struct {
	Icon  string
	Color lipgloss.Color
	Label string
}

// CategoryToVisual maps a category to its visual using the active theme.
// Every category that is not success or error, including the empty and
// unknown ones, is presented as info.
func CategoryToVisual(c toast.Category) Visual {
	return visualFor(c, styles.GetActiveTheme())
}

func visualFor(c toast.Category, s *styles.ThemedStyles) Visual {
	switch c {
	case toast.CategorySuccess:
		return Visual{Icon: IconSuccess, Color: s.SuccessColor, Label: "success"}
	case toast.CategoryError:
		return Visual{Icon: IconError, Color: s.ErrorColor, Label: "error"}
	case toast.CategoryInfo:
		return Visual{Icon: IconInfo, Color: s.InfoColor, Label: "info"}
	default:
		return Visual{Icon: IconInfo, Color: s.InfoColor, Label: "info"}
	}
}
