package catalog

// DimensionChoice is the set of labels currently selected for one variant
// dimension. The single-select flows pass a singleton Labels slice; the
// multi-select bulk-add flow may pass several.
type DimensionChoice struct {
	Type   string
	Labels []string
}

// Combinations expands per-dimension label choices into the full list of
// concrete selections: the cartesian product across dimensions, one label per
// dimension. The running list starts with the first dimension's labels and is
// replaced by its product against each subsequent dimension, so output order
// is stable for a given input order.
//
// A dimension with no labels means the selection is incomplete: the result is
// empty and callers block add-to-cart with a validation error, rather than
// the dimension being silently dropped.
func Combinations(choices []DimensionChoice) []Selection {
	if len(choices) == 0 {
		return nil
	}

	combos := []Selection{{}}
	for _, choice := range choices {
		if len(choice.Labels) == 0 {
			return nil
		}
		expanded := make([]Selection, 0, len(combos)*len(choice.Labels))
		for _, base := range combos {
			for _, label := range choice.Labels {
				next := make(Selection, len(base)+1)
				for k, v := range base {
					next[k] = v
				}
				next[choice.Type] = label
				expanded = append(expanded, next)
			}
		}
		combos = expanded
	}

	return combos
}
