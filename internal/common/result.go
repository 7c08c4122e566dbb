package common

// Result is the outcome of a read against the data layer. Data is never nil for
// slice types built through Collection, so callers can render it directly; Err
// tells an empty collection apart from a failed fetch.
type Result[T any] struct {
	Data T
	Err  error
}

// OK reports whether the read succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Collection wraps a list read. A nil slice becomes an empty one.
func Collection[E any](items []E, err error) Result[[]E] {
	if items == nil || err != nil {
		items = []E{}
	}
	return Result[[]E]{Data: items, Err: err}
}

// Single wraps a single-record read
func Single[T any](item *T, err error) Result[*T] {
	if err != nil {
		return Result[*T]{Err: err}
	}
	return Result[*T]{Data: item}
}
