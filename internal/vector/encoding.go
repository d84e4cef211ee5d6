// Package vector provides semantic note retrieval: embeddings are stored as
// float32 blobs alongside notes and ranked by cosine similarity at query
// time. The store itself has no vector index; ranking happens in process,
// which is plenty for per-user note counts.
package vector

import (
	"encoding/binary"
	"math"
)

// Encode packs a float32 vector into a little-endian byte blob.
func Encode(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// Decode unpacks a little-endian byte blob into a float32 vector. Trailing
// bytes that do not form a full float32 are ignored.
func Decode(b []byte) []float32 {
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

// Cosine returns the cosine similarity of two vectors, or 0 when either has
// zero magnitude or the dimensions differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
