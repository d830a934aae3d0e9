package toast

// Category is the semantic kind of a toast. It drives the visual treatment
// chosen by the render surface.
type Category string

const (
	// CategoryInfo is a neutral informational message. It is the default.
	CategoryInfo Category = "info"
	// CategorySuccess reports a completed operation.
	CategorySuccess Category = "success"
	// CategoryError reports a failed operation or invalid input.
	CategoryError Category = "error"
)

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{CategoryInfo, CategorySuccess, CategoryError}
}

// IsKnown reports whether c is one of the known categories.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryInfo, CategorySuccess, CategoryError:
		return true
	default:
		return false
	}
}

// OrDefault returns c, or CategoryInfo when c is empty.
// Unrecognized non-empty values are returned unchanged.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryInfo
	}
	return c
}

func (c Category) String() string {
	return string(c)
}
