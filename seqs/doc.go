/*
Package seqs combines two Go 1.23+ iterators (iter.Seq) position by position.

All three entry points pair the i-th element of the first sequence with the
i-th element of the second and hand the pair to a caller-supplied combine
function; they differ only in what happens when one input runs out before
the other:

  - [Zip] stops at the shorter input.
  - [ZipLongest] keeps going to the longer input, substituting zero values
    for the exhausted side.
  - [EquiZip] treats a length mismatch as an error and surfaces it the way
    Try-style helpers do: in the error slot of an iter.Seq2 element.

# Laziness

Results are produced on demand. Nothing is pulled from either input until
the consumer asks for the next element, and stopping early (breaking out of
the range loop) releases both input cursors.

# Reuse

The returned sequences are views, not buffers. Ranging over one twice
re-traverses both inputs, which is only valid if the inputs themselves
support repeated traversal.
*/
package seqs
