package patch

// CoalescePtr prefers the supplied pointer and falls back to the current one.
func CoalescePtr[T any](supplied, current *T) *T {
	if supplied != nil {
		return supplied
	}
	return current
}
