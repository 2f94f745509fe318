// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

// Action inspects one tagged element. It receives the element's tag, its
// content (nil when the element has none), the output format, and the
// document metadata. It returns nil to leave the element unchanged, a
// []any to splice several elements in its place, or a single replacement
// element.
type Action func(kind string, value any, format string, meta Meta) (any, error)

// Walk applies action to every tagged element found in a list, depth
// first, and returns the rebuilt tree. Unchanged elements are walked into;
// replacements and spliced elements are walked into after substitution.
// Walk never modifies x. The first error returned by action aborts the
// walk.
func Walk(x any, action Action, format string, meta Meta) (any, error) {
	switch v := x.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			kind, content, ok := Tagged(item)
			if !ok {
				w, err := Walk(item, action, format, meta)
				if err != nil {
					return nil, err
				}
				out = append(out, w)
				continue
			}

			res, err := action(kind, content, format, meta)
			if err != nil {
				return nil, err
			}

			var next []any
			switch r := res.(type) {
			case nil:
				next = []any{item}
			case []any:
				next = r
			default:
				next = []any{r}
			}
			for _, n := range next {
				w, err := Walk(n, action, format, meta)
				if err != nil {
					return nil, err
				}
				out = append(out, w)
			}
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			w, err := Walk(val, action, format, meta)
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	default:
		return x, nil
	}
}
