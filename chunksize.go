package ryu

// ChunkSize builds a child that batches every n items parent emits into one
// []T (spec §6 "chunksize"). Any short trailing batch still buffered when
// parent completes is residue (GLOSSARY "Residue") and is discarded, not
// emitted. n must be positive; n<=0 fails immediately with
// ErrInvalidOperatorArgument.
func ChunkSize[T any](parent *Source[T], n int) *Source[[]T] {
	child := chain[T, []T](parent, "chunksize")
	if n <= 0 {
		child.Fail(ErrInvalidOperatorArgument)
		return child
	}

	batch := make([]T, 0, n)
	eachWhileSource(parent, child, func(v T) {
		batch = append(batch, v)
		if len(batch) < n {
			return
		}
		out := batch
		batch = make([]T, 0, n)
		if err := child.Emit(out); err != nil {
			return
		}
	})

	forwardCompletion(parent, child)
	return child
}
