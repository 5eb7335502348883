// Package hll estimates the number of distinct elements in a stream with a HyperLogLog
// sketch: 2^p small registers, each holding the largest rank (one plus the leading zero
// count of the hash bits not used for indexing) seen for its bucket. The estimate combines
// the harmonic mean of the registers with the empirical bias correction and linear
// counting threshold from "HyperLogLog in Practice: Algorithmic Engineering of a State of
// The Art Cardinality Estimation Algorithm" by Heule, Nunkesser and Hall of Google.
//
// Memory use is fixed by the precision p, which is clamped into [4,16]; the relative
// standard error is about 1.04/sqrt(2^p). Adding an element twice has no effect, and the
// order of additions does not matter, so sketches built over disjoint shards of a stream
// can be merged into the sketch of the whole stream.
//
// The HyperLogLog++ paper is available at
// http://static.googleusercontent.com/media/research.google.com/en/us/pubs/archive/40671.pdf
package hll
