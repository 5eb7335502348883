package hll

import (
	"math"
	"testing"

	"github.com/bmizerany/assert"
)

func TestBiasTables(t *testing.T) {
	for p := minPrecision; p <= maxPrecision; p++ {
		raw, bias := estimateMap[p], biasMap[p]
		assert.Equalf(t, len(raw), len(bias), "p=%d", p)
		assert.Tf(t, len(raw) >= biasNeighbors, "p=%d has %d reference points", p, len(raw))
		assert.Tf(t, thresholds[p] > 0, "p=%d has no threshold", p)

		for i := 1; i < len(raw); i++ {
			assert.Tf(t, raw[i-1] < raw[i], "p=%d raw estimates not ascending at %d", p, i)
		}

		// Bias correction applies up to 5m, the references have to reach that far.
		assert.Tf(t, raw[len(raw)-1] >= 5*float64(uint64(1)<<p), "p=%d tables stop at %v", p, raw[len(raw)-1])
	}
}

func meanBias(bias []float64) float64 {
	sum := float64(0)
	for _, b := range bias {
		sum += b
	}
	return sum / float64(len(bias))
}

func TestEstimateBias(t *testing.T) {
	for _, p := range []uint{4, 10, 16} {
		h := mustNewHll(t, p, "")
		raw, bias := estimateMap[p], biasMap[p]

		// Below the first reference point, the six lowest points are the neighbours.
		assert.Equal(t, meanBias(bias[:biasNeighbors]), h.estimateBias(0))

		// Above the last one, the six highest.
		high := h.estimateBias(raw[len(raw)-1] * 10)
		assert.T(t, math.Abs(high-meanBias(bias[len(bias)-biasNeighbors:])) < 1e-9, high)
	}
}

// Biases shrink as the raw estimate grows at the low end of the table, so the neighbour
// mean must lie between the biases of the surrounding reference points.
func TestEstimateBiasNeighbours(t *testing.T) {
	h := mustNewHll(t, 4, "")
	bias := biasMap[4]

	b := h.estimateBias(12.5)
	assert.Tf(t, b < bias[0] && b > bias[8], "bias %v", b)
}

// On equal distance the lower table index is kept.
func TestEstimateBiasTieBreak(t *testing.T) {
	savedRaw, savedBias := estimateMap[4], biasMap[4]
	defer func() {
		estimateMap[4], biasMap[4] = savedRaw, savedBias
	}()
	estimateMap[4] = []float64{0, 1, 2, 3, 4, 5, 6, 7}
	biasMap[4] = []float64{10, 20, 30, 40, 50, 60, 70, 80}

	h := mustNewHll(t, 4, "")

	// Points 0 and 6 are both 3 away from 3; point 0 comes first.
	assert.Equal(t, float64(35), h.estimateBias(3))

	// Points 1 and 6 are nearer to 3.5 than 0 and 7.
	assert.Equal(t, float64(45), h.estimateBias(3.5))
}
