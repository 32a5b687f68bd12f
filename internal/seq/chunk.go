package seq

import "iter"

// Chunks reads seq through iter.Pull and yields its values in slices of at
// most size elements. Only the last slice may be shorter. Each yielded slice
// is freshly allocated and may be retained by the caller. A size below one is
// treated as one.
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size < 1 {
		size = 1
	}

	return func(yield func([]T) bool) {
		// next is the function returned by iter.Pull that provides the next available
		// element; stop signals that seq will no longer be iterated.
		next, stop := iter.Pull(seq)
		defer stop()

		buf := make([]T, 0, size)
		for {
			value, ok := next()
			if !ok {
				break
			}

			buf = append(buf, value)
			if len(buf) < size {
				continue
			}
			if !yield(buf) {
				return
			}
			buf = make([]T, 0, size)
		}

		if len(buf) > 0 {
			yield(buf)
		}
	}
}
