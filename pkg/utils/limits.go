package utils

// ClampLimit normalizes a requested page size: non-positive values fall
// back to def, values above max are capped.
func ClampLimit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if max > 0 && requested > max {
		return max
	}
	return requested
}
