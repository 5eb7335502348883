package hll

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

const (
	alpha_16 = 0.673
	alpha_32 = 0.697
	alpha_64 = 0.709
)

const (
	// Precision bounds. Values passed to NewHll outside this range are clamped.
	minPrecision = 4
	maxPrecision = 16

	// Width in bits of every hash value fed into the registers.
	hashWidth = 64
)

var (
	// ErrConfigMismatch is returned when two sketches with different precision or hash
	// function are combined.
	ErrConfigMismatch = errors.New("hll: configuration mismatch")

	// ErrUnknownHash is returned for a hash identifier that is not registered.
	ErrUnknownHash = errors.New("hll: unknown hash identifier")

	// ErrCorruptSnapshot is returned when an imported snapshot or encoded sketch does not
	// describe a valid register state.
	ErrCorruptSnapshot = errors.New("hll: corrupt snapshot")
)

// Hll is a HyperLogLog cardinality estimator. It is not safe for concurrent use: give each
// goroutine its own Hll and Merge them when done.
//
// The zero value is not usable and panics on Add. Build an Hll with NewHll or FromSnapshot,
// or decode one with UnmarshalJSON, UnmarshalBinary or gob.
type Hll struct {
	bigM          normal   // M holds the rho value of each register.
	hashID        string   // identifier of the hash function, must match for Merge
	hash          HashFunc // resolved from hashID
	alpha         float64  // constant used in cardinality calculation
	p             uint     // precision bits, used to index registers
	m             uint64   // number of registers
	idxMask       uint64   // m-1
	estimatorBits uint     // hash bits left over for the rank after indexing
}

// NewHll returns an empty sketch with 2^p registers that hashes its inputs with the hash
// function registered under hashID. p is clamped into [4,16]. An empty hashID selects
// DefaultHash.
func NewHll(p uint, hashID string) (*Hll, error) {
	if hashID == "" {
		hashID = DefaultHash
	}
	hash, err := LookupHash(hashID)
	if err != nil {
		return nil, err
	}

	h := &Hll{hashID: hashID, hash: hash}
	h.init(clampPrecision(p))
	h.bigM = newNormal(h.m)
	return h, nil
}

// init derives every constant that depends on the precision.
func (h *Hll) init(p uint) {
	h.p = p
	h.m = 1 << p
	h.idxMask = h.m - 1
	h.estimatorBits = hashWidth - p

	switch h.m {
	case 16:
		h.alpha = alpha_16
	case 32:
		h.alpha = alpha_32
	case 64:
		h.alpha = alpha_64
	default:
		h.alpha = 0.7213 / (1.0 + 1.079/float64(h.m))
	}
}

func clampPrecision(p uint) uint {
	if p < minPrecision {
		return minPrecision
	}
	if p > maxPrecision {
		return maxPrecision
	}
	return p
}

// Precision returns the effective (clamped) precision.
func (h *Hll) Precision() uint {
	return h.p
}

// HashID returns the identifier of the hash function used by the sketch.
func (h *Hll) HashID() string {
	return h.hashID
}

// Add hashes an element and updates the register it maps to. Adding the same element any
// number of times has the same effect as adding it once.
func (h *Hll) Add(element []byte) {
	h.AddHash(h.hash(element))
}

// AddString adds the UTF-8 bytes of s.
func (h *Hll) AddString(s string) {
	h.Add([]byte(s))
}

// Write adds p as a single element, which makes an Hll usable as the sink of anything
// that writes one record per call. It never fails.
func (h *Hll) Write(p []byte) (int, error) {
	h.Add(p)
	return len(p), nil
}

// AddHash updates the registers with an already hashed value. The low p bits of x select
// the register, the remaining bits determine the rank.
func (h *Hll) AddHash(x uint64) {
	idx := extractShift(x, 0, h.p-1)
	r := rho(extractShift(x, h.p, hashWidth-1), h.estimatorBits)
	if r > h.bigM.Get(idx) {
		h.bigM.Set(idx, r)
	}
}

// Merge returns a new sketch whose registers are the element-wise maximum of h and other,
// which is the sketch of the union of both input streams. Neither input is modified.
func (h *Hll) Merge(other *Hll) (*Hll, error) {
	if h.p != other.p {
		return nil, errors.Wrapf(ErrConfigMismatch, "precision %d != %d", h.p, other.p)
	}
	if h.hashID != other.hashID {
		return nil, errors.Wrapf(ErrConfigMismatch, "hash %q != %q", h.hashID, other.hashID)
	}

	merged := h.Clone()
	for i := uint64(0); i < h.m; i++ {
		merged.bigM.Set(i, maxU8(h.bigM.Get(i), other.bigM.Get(i)))
	}
	return merged, nil
}

// Clone returns a deep copy of h.
func (h *Hll) Clone() *Hll {
	c := *h
	c.bigM = h.bigM.Copy()
	return &c
}

// Cardinality returns the estimated number of distinct elements added so far.
func (h *Hll) Cardinality() uint64 {
	inverseSum := float64(0)
	V := uint64(0)

	// calculate the harmonic mean of the values in the registers.
	for i := uint64(0); i < h.m; i++ {
		registerVal := h.bigM.Get(i)
		inverseSum += math.Ldexp(1, -int(registerVal))
		if registerVal == 0 {
			V++
		}
	}
	e := h.alpha * float64(h.m) * float64(h.m) / inverseSum

	// Take bias into consideration
	if e <= 5*float64(h.m) {
		e -= h.estimateBias(e)
	}

	// While some registers are still empty, linear counting is more accurate than the
	// bias-corrected raw estimate below the empirical threshold.
	H := e
	if V != 0 {
		H = linearCounting(h.m, V)
	}
	if H <= thresholds[h.p] {
		return roundFloatToUint64(H)
	}
	return roundFloatToUint64(e)
}

// rho returns one plus the number of leading zeros of x, read as a width-bit field.
func rho(x uint64, width uint) uint8 {
	if x == 0 {
		return uint8(width + 1)
	}
	return uint8(bits.LeadingZeros64(x) - (hashWidth - int(width)) + 1)
}

// Returns linear counting cardinality estimate.
func linearCounting(m, v uint64) float64 {
	return float64(m) * math.Log(float64(m)/float64(v))
}

func roundFloatToUint64(value float64) uint64 {
	if value <= 0 || math.IsNaN(value) {
		return 0
	}
	return uint64(math.Round(value))
}

func maxU8(x, y uint8) uint8 {
	if x >= y {
		return x
	}
	return y
}
