package sanitizer

// EveryString reports whether pred holds for every string value in a decoded
// document tree made of map[string]any, []any and scalars. Map keys are not
// visited and the tree is never modified.
func EveryString(v any, pred func(string) bool) bool {
	switch val := v.(type) {
	case string:
		return pred(val)
	case map[string]any:
		for _, item := range val {
			if !EveryString(item, pred) {
				return false
			}
		}
	case []any:
		for _, item := range val {
			if !EveryString(item, pred) {
				return false
			}
		}
	}
	return true
}
