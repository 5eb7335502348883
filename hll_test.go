package hll

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func mustNewHll(t testing.TB, p uint, hashID string) *Hll {
	h, err := NewHll(p, hashID)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

// le32 returns i as a 4-byte little-endian element.
func le32(i uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, i)
	return buf
}

func TestNewHll(t *testing.T) {
	testCases := []struct {
		p, expectP uint
	}{
		{0, 4},
		{2, 4},
		{4, 4},
		{10, 10},
		{16, 16},
		{18, 16},
	}

	for _, testCase := range testCases {
		h := mustNewHll(t, testCase.p, "")
		assert.Equal(t, testCase.expectP, h.Precision())
		assert.Equal(t, DefaultHash, h.HashID())

		registers := h.Export().Registers
		assert.Equal(t, 1<<testCase.expectP, len(registers))
		for _, r := range registers {
			assert.Equal(t, uint8(0), r)
		}
		assert.Equal(t, uint64(0), h.Cardinality())
	}
}

func TestNewHllUnknownHash(t *testing.T) {
	h, err := NewHll(14, "crc7")
	assert.T(t, h == nil)
	assert.T(t, errors.Is(err, ErrUnknownHash), err)
}

func TestAlpha(t *testing.T) {
	assert.Equal(t, alpha_16, mustNewHll(t, 4, "").alpha)
	assert.Equal(t, alpha_32, mustNewHll(t, 5, "").alpha)
	assert.Equal(t, alpha_64, mustNewHll(t, 6, "").alpha)
	m := float64(1024)
	assert.Equal(t, 0.7213/(1.0+1.079/m), mustNewHll(t, 10, "").alpha)
}

// The low p bits pick the register and the rank comes from the remaining bits.
func TestAddHash(t *testing.T) {
	h := mustNewHll(t, 4, "")

	h.AddHash(3 | 1<<4) // estimator 1: 59 leading zeros in a 60 bit field
	assert.Equal(t, uint8(60), h.bigM.Get(3))

	h.AddHash(3) // estimator 0
	assert.Equal(t, uint8(61), h.bigM.Get(3))

	h.AddHash(5 | 1<<62)
	assert.Equal(t, uint8(2), h.bigM.Get(5))

	// Registers never decrease.
	h.AddHash(5 | 1<<63)
	assert.Equal(t, uint8(2), h.bigM.Get(5))
	h.AddHash(3 | 1<<63)
	assert.Equal(t, uint8(61), h.bigM.Get(3))

	for i := uint64(0); i < h.m; i++ {
		if i != 3 && i != 5 {
			assert.Equal(t, uint8(0), h.bigM.Get(i))
		}
	}
}

func TestAddIdempotent(t *testing.T) {
	once := mustNewHll(t, 10, "")
	many := mustNewHll(t, 10, "")

	once.AddString("element")
	for i := 0; i < 1000; i++ {
		many.AddString("element")
	}
	assert.Equal(t, once.Export(), many.Export())
	assert.Equal(t, uint64(1), many.Cardinality())
}

func TestAddOrderIndependent(t *testing.T) {
	const n = 5000

	forward := mustNewHll(t, 12, "metro")
	backward := mustNewHll(t, 12, "metro")
	shuffled := mustNewHll(t, 12, "metro")

	for i := 0; i < n; i++ {
		forward.Add(le32(uint32(i)))
		backward.Add(le32(uint32(n - 1 - i)))
	}
	for _, i := range rand.New(rand.NewSource(42)).Perm(n) {
		shuffled.Add(le32(uint32(i)))
	}

	assert.Equal(t, forward.Export(), backward.Export())
	assert.Equal(t, forward.Export(), shuffled.Export())
}

func TestWrite(t *testing.T) {
	viaWrite := mustNewHll(t, 8, "xxhash")
	viaAdd := mustNewHll(t, 8, "xxhash")

	for _, s := range []string{"a", "b", "c", "a"} {
		n, err := viaWrite.Write([]byte(s))
		assert.Equal(t, nil, err)
		assert.Equal(t, len(s), n)
		viaAdd.AddString(s)
	}
	assert.Equal(t, viaAdd.Export(), viaWrite.Export())
}

// A sketch of precision p should land within a few standard errors (1.04/sqrt(2^p)).
func TestCardinalityAccuracy(t *testing.T) {
	const (
		n      = 100000
		trials = 4
	)

	for _, p := range []uint{4, 8, 10, 12, 14, 16} {
		stdErr := 1 / math.Sqrt(float64(uint64(1)<<p))
		sumErr := float64(0)

		for trial := 0; trial < trials; trial++ {
			h := mustNewHll(t, p, "")
			offset := uint32(trial * n)
			for i := uint32(0); i < n; i++ {
				h.Add(le32(offset + i))
			}

			relErr := math.Abs(float64(h.Cardinality())-n) / n
			assert.Tf(t, relErr <= 3*stdErr, "p=%d trial=%d error %v", p, trial, relErr)
			sumErr += relErr
		}

		meanErr := sumErr / trials
		assert.Tf(t, meanErr <= 2*stdErr, "p=%d mean error %v", p, meanErr)
	}
}

func TestCardinalityAccuracyPerHash(t *testing.T) {
	const n = 100000

	for _, id := range HashIdentifiers() {
		h := mustNewHll(t, 14, id)
		for i := uint32(0); i < n; i++ {
			h.Add(le32(i))
		}

		relErr := math.Abs(float64(h.Cardinality())-n) / n
		assert.Tf(t, relErr <= 4/math.Sqrt(1<<14), "hash %s error %v", id, relErr)
	}
}

// Small cardinalities are answered by linear counting over the empty registers.
func TestCardinalityLinearCounting(t *testing.T) {
	registers := make([]uint8, 16)
	registers[1], registers[7], registers[11] = 1, 1, 1

	h, err := FromSnapshot(Snapshot{HashID: DefaultHash, Precision: 4, Registers: registers})
	assert.Equal(t, nil, err)

	// 16 * ln(16/13) = 3.32
	assert.Equal(t, uint64(3), h.Cardinality())

	for i := uint32(0); i < 5; i++ {
		small := mustNewHll(t, 4, "")
		for j := uint32(0); j <= i; j++ {
			small.Add(le32(j))
		}
		card := small.Cardinality()
		assert.Tf(t, card >= 1 && card <= uint64(i+2), "%d elements estimated as %d", i+1, card)
	}
}

// Without empty registers the bias corrected raw estimate is used.
func TestCardinalityBiasCorrected(t *testing.T) {
	registers := make([]uint8, 16)
	for i := range registers {
		registers[i] = 1
	}
	h, err := FromSnapshot(Snapshot{HashID: DefaultHash, Precision: 4, Registers: registers})
	assert.Equal(t, nil, err)

	raw := alpha_16 * 16 * 16 / 8
	expected := roundFloatToUint64(raw - h.estimateBias(raw))
	assert.T(t, expected > uint64(thresholds[4]))
	assert.Equal(t, expected, h.Cardinality())
}

// Above 5m the raw estimate is returned as is.
func TestCardinalityRawEstimate(t *testing.T) {
	registers := make([]uint8, 16)
	for i := range registers {
		registers[i] = 20
	}
	h, err := FromSnapshot(Snapshot{HashID: DefaultHash, Precision: 4, Registers: registers})
	assert.Equal(t, nil, err)

	raw := alpha_16 * 16 * 16 / (16 * math.Ldexp(1, -20))
	assert.Equal(t, roundFloatToUint64(raw), h.Cardinality())
}

func TestMerge(t *testing.T) {
	a := mustNewHll(t, 12, "murmur3")
	b := mustNewHll(t, 12, "murmur3")
	c := mustNewHll(t, 12, "murmur3")

	for i := uint32(0); i < 30000; i++ {
		switch i % 3 {
		case 0:
			a.Add(le32(i))
		case 1:
			b.Add(le32(i))
		default:
			c.Add(le32(i))
		}
	}
	aBefore, bBefore, cBefore := a.Export(), b.Export(), c.Export()

	mustMerge := func(x, y *Hll) *Hll {
		merged, err := x.Merge(y)
		assert.Equal(t, nil, err)
		return merged
	}

	abc1 := mustMerge(a, mustMerge(b, c))
	abc2 := mustMerge(mustMerge(a, b), c)
	abc3 := mustMerge(a, mustMerge(c, b))
	assert.Equal(t, abc1.Export(), abc2.Export())
	assert.Equal(t, abc1.Export(), abc3.Export())

	// Inputs are left untouched.
	assert.Equal(t, aBefore, a.Export())
	assert.Equal(t, bBefore, b.Export())
	assert.Equal(t, cBefore, c.Export())

	// The merged sketch equals a sketch that saw the whole stream.
	all := mustNewHll(t, 12, "murmur3")
	for i := uint32(0); i < 30000; i++ {
		all.Add(le32(i))
	}
	assert.Equal(t, all.Export(), abc1.Export())

	// The result owns its registers.
	abc1.AddString("only in abc1")
	assert.Equal(t, aBefore, a.Export())
}

func TestMergeSameElements(t *testing.T) {
	a := mustNewHll(t, 14, "")
	b := mustNewHll(t, 14, "")
	for i := uint32(0); i < 20000; i++ {
		a.Add(le32(i))
		b.Add(le32(i))
	}

	merged, err := a.Merge(b)
	assert.Equal(t, nil, err)
	assert.Equal(t, a.Cardinality(), merged.Cardinality())
}

func TestMergeDisjoint(t *testing.T) {
	const half = 50000

	a := mustNewHll(t, 14, "farm")
	b := mustNewHll(t, 14, "farm")
	for i := uint32(0); i < half; i++ {
		a.Add(le32(i))
		b.Add(le32(half + i))
	}

	merged, err := a.Merge(b)
	assert.Equal(t, nil, err)

	relErr := math.Abs(float64(merged.Cardinality())-2*half) / (2 * half)
	assert.Tf(t, relErr <= 4/math.Sqrt(1<<14), "error %v", relErr)
}

func TestMergeMismatch(t *testing.T) {
	a := mustNewHll(t, 10, "sha1")

	for _, other := range []*Hll{
		mustNewHll(t, 11, "sha1"),
		mustNewHll(t, 10, "md5"),
	} {
		merged, err := a.Merge(other)
		assert.T(t, merged == nil)
		assert.T(t, errors.Is(err, ErrConfigMismatch), err)
	}
}

func TestClone(t *testing.T) {
	h := mustNewHll(t, 6, "")
	h.AddString("a")

	c := h.Clone()
	c.AddHash(0)
	c.AddHash(1)

	assert.Equal(t, uint64(1), h.Cardinality())
	assert.NotEqual(t, h.Export(), c.Export())
}

func BenchmarkAdd(b *testing.B) {
	h := mustNewHll(b, 14, "xxhash")
	elem := make([]byte, 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		binary.LittleEndian.PutUint32(elem, uint32(i))
		h.Add(elem)
	}
}

func BenchmarkCardinality(b *testing.B) {
	h := mustNewHll(b, 14, "xxhash")
	for i := uint32(0); i < 10000; i++ {
		h.Add(le32(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Cardinality()
	}
}

// An Hll has to be constructed or decoded before use; the zero value has no hash function.
func TestZeroValueUnusable(t *testing.T) {
	defer func() {
		assert.T(t, recover() != nil, "Add on a zero Hll did not panic")
	}()
	(&Hll{}).AddString("x")
}
