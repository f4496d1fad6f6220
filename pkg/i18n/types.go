package i18n

// M is a convenience type for interpolation parameter maps.
// It maps placeholder names to their values.
type M map[string]any
