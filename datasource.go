package databend

// Source is a stateful reader which decodes a row-oriented input stream into
// columnar DataBlocks, one batch per Read call. A Source is exclusively owned
// by the caller driving it: Read must not be invoked concurrently on the same
// instance. Independent Source instances over independent readers may be
// driven concurrently.
type Source interface {
	// Read produces the next DataBlock, or (nil, nil) when the source is
	// exhausted. Any failure aborts the in-progress batch entirely: no
	// partially-decoded rows are ever returned alongside an error.
	Read() (*DataBlock, error)
}
