package word

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		v := r.Uint32()
		assert.Equal(t, v, FromUint32(v).Uint32())
	}

	assert.Equal(t, int32(-1), FromUint32(0xffffffff).Int32())
	assert.Equal(t, int32(math.MinInt32), FromUint32(0x80000000).Int32())
}

func TestFloat32View(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.15625, float32(math.Inf(1)), math.SmallestNonzeroFloat32} {
		assert.Equal(t, f, FromFloat32(f).Float32())
	}

	// -0 and NaN keep their exact bit patterns through a double swap.
	negZero := FromUint32(0x80000000)
	assert.Equal(t, uint32(0x80000000), Swap4(Swap4(negZero)).Uint32())

	nan := FromFloat32(float32(math.NaN()))
	assert.Equal(t, nan, Swap4(Swap4(nan)))
}

// Swapping repositions bytes but never alters them.
func TestSwap4_PreservesByteContent(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 1000; i++ {
		var w Word
		r.Read(w[:])

		var in, out [256]int
		for _, b := range w {
			in[b]++
		}
		for _, b := range Swap4(w) {
			out[b]++
		}
		assert.Equal(t, in, out)
	}
}
