package entities

// FilterNew returns the annotations of current that have no matching finding
// in baseline, in the order they appear in current.
//
// Behaviour:
//   - An empty baseline returns a copy of current.
//   - Duplicates in current are tested independently.
//   - Neither input is modified.
func FilterNew(current, baseline []Annotation) []Annotation {
	result := make([]Annotation, 0, len(current))
	for _, annotation := range current {
		if !containsFinding(baseline, annotation) {
			result = append(result, annotation)
		}
	}
	return result
}

func containsFinding(annotations []Annotation, target Annotation) bool {
	for _, annotation := range annotations {
		if annotation.SameFinding(target) {
			return true
		}
	}
	return false
}
