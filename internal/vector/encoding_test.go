package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode(t *testing.T) {
	v := []float32{0.5, -1.25, 3.75, 0}
	assert.Equal(t, v, Decode(Encode(v)))
}

func TestEncode_Empty(t *testing.T) {
	assert.Empty(t, Encode(nil))
	assert.Empty(t, Decode(nil))
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	b := Encode([]float32{1, 2})
	b = append(b, 0xFF, 0x01)
	assert.Equal(t, []float32{1, 2}, Decode(b))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-3, 0}), 1e-9)
}

func TestCosine_DegenerateInputs(t *testing.T) {
	// Dimension mismatch.
	assert.Equal(t, 0.0, Cosine([]float32{1, 0}, []float32{1}))
	// Zero magnitude.
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
	// Empty.
	assert.Equal(t, 0.0, Cosine(nil, nil))
}
