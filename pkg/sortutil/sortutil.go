// Package sortutil provides the by-metadata vertex sort spec.md requires for
// API parity with the reference implementation, even though it has nothing
// to do with the clustering core itself.
package sortutil

import (
	"sort"

	"github.com/nucleus/cnm-core/pkg/cnmerr"
)

// Vertex is any value carrying a metadata bag keyed by string. pkg/graphmodel's
// Vertex type satisfies this alongside cnm.Vertex; the two interfaces are
// otherwise unrelated.
type Vertex interface {
	Metadata() map[string]any
}

// SortByMetadata returns a new slice containing vertices ordered by the value
// stored under key in each vertex's Metadata(), ascending if ascending is
// true and descending otherwise. Supported value kinds are int, int64,
// float64, and string; all vertices must agree on which kind is stored under
// key.
//
// It fails with an InvalidArgument error when vertices is nil, key is empty,
// key is absent from any vertex's metadata, or a stored value's type is not
// one of the supported kinds (or disagrees with the first vertex's kind).
func SortByMetadata[V Vertex](vertices []V, key string, ascending bool) ([]V, error) {
	const op = "sortutil.SortByMetadata"

	if vertices == nil {
		return nil, cnmerr.InvalidArgumentf(op, "vertices must not be nil")
	}
	if key == "" {
		return nil, cnmerr.InvalidArgumentf(op, "key must not be empty")
	}
	if len(vertices) == 0 {
		return []V{}, nil
	}

	values := make([]any, len(vertices))
	for i, v := range vertices {
		meta := v.Metadata()
		val, ok := meta[key]
		if !ok {
			return nil, cnmerr.InvalidArgumentf(op, "key %q absent from vertex at index %d", key, i)
		}
		values[i] = val
	}

	less, err := lessFuncFor(op, values)
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(vertices))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		if ascending {
			return less(values[idx[i]], values[idx[j]])
		}
		return less(values[idx[j]], values[idx[i]])
	})

	sorted := make([]V, len(vertices))
	for i, j := range idx {
		sorted[i] = vertices[j]
	}
	return sorted, nil
}

// lessFuncFor inspects the first value to pick a comparator, then validates
// every remaining value matches that kind so a mixed-type metadata column
// fails loudly instead of sorting nonsensically.
func lessFuncFor(op string, values []any) (func(a, b any) bool, error) {
	switch values[0].(type) {
	case int:
		if err := requireAll[int](op, values); err != nil {
			return nil, err
		}
		return func(a, b any) bool { return a.(int) < b.(int) }, nil
	case int64:
		if err := requireAll[int64](op, values); err != nil {
			return nil, err
		}
		return func(a, b any) bool { return a.(int64) < b.(int64) }, nil
	case float64:
		if err := requireAll[float64](op, values); err != nil {
			return nil, err
		}
		return func(a, b any) bool { return a.(float64) < b.(float64) }, nil
	case string:
		if err := requireAll[string](op, values); err != nil {
			return nil, err
		}
		return func(a, b any) bool { return a.(string) < b.(string) }, nil
	default:
		return nil, cnmerr.InvalidArgumentf(op, "unsupported metadata value type %T", values[0])
	}
}

func requireAll[T any](op string, values []any) error {
	for i, v := range values {
		if _, ok := v.(T); !ok {
			return cnmerr.InvalidArgumentf(op, "metadata value at index %d has type %T, want %T", i, v, *new(T))
		}
	}
	return nil
}
