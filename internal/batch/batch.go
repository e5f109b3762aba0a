// Package batch partitions an ordered text sequence into fixed-size,
// order-preserving batches for translation.
package batch

// Batch is a contiguous slice of texts tagged with the 0-based position of
// its first element in the full sequence. The start offset is the reassembly
// key: results may arrive in any order, but concatenating batches by
// ascending Start always recovers the original order. Immutable once built.
type Batch struct {
	Start int
	Texts []string
}

// Count returns the number of texts in the batch.
func (b Batch) Count() int { return len(b.Texts) }

// Split partitions texts into ceil(len(texts)/size) batches of up to size
// consecutive elements. Elements are never reordered or dropped; empty input
// yields no batches. size must be positive.
func Split(texts []string, size int) []Batch {
	if size <= 0 {
		panic("batch: size must be positive")
	}
	var batches []Batch
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		batches = append(batches, Batch{Start: start, Texts: texts[start:end]})
	}
	return batches
}
