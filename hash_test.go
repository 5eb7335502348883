package hll

import (
	"math"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
	"github.com/segmentio/fasthash/fnv1a"
)

func TestHashIdentifiers(t *testing.T) {
	assert.Equal(t, []string{"farm", "fnv1a", "md5", "metro", "murmur3", "sha1", "sha256", "xxhash"}, HashIdentifiers())

	_, err := LookupHash(DefaultHash)
	assert.Equal(t, nil, err)
}

func TestLookupHashUnknown(t *testing.T) {
	fn, err := LookupHash("SHA1")
	assert.T(t, fn == nil)
	assert.T(t, errors.Is(err, ErrUnknownHash), err)
}

func TestHashKnownValues(t *testing.T) {
	testCases := []struct {
		id     string
		input  string
		expect uint64
	}{
		// First 8 bytes of sha1("") = da39a3ee5e6b4b0d, read little endian.
		{"sha1", "", 0x0d4b6b5eeea339da},
		// md5("") = d41d8cd98f00b204...
		{"md5", "", 0x04b2008fd98c1dd4},
		{"xxhash", "", 0xef46db3751d8e999},
		// FNV-1a offset basis and fnv1a("a"), passed through fmix64.
		{"fnv1a", "", 0xefd01f60ba992926},
		{"fnv1a", "a", 0x82a2a958a9bece5b},
	}

	for _, testCase := range testCases {
		fn, err := LookupHash(testCase.id)
		assert.Equal(t, nil, err)
		assert.Equalf(t, testCase.expect, fn([]byte(testCase.input)), "%s(%q)", testCase.id, testCase.input)
	}
}

func TestHashesDeterministic(t *testing.T) {
	for _, id := range HashIdentifiers() {
		fn, err := LookupHash(id)
		assert.Equal(t, nil, err)

		assert.Equalf(t, fn([]byte("hello")), fn([]byte("hello")), "%s", id)
		assert.NotEqual(t, fn([]byte("hello")), fn([]byte("hellp")), id)
	}
}

func TestFmix64(t *testing.T) {
	assert.Equal(t, uint64(0), fmix64(0))
	assert.Equal(t, uint64(0xefd01f60ba992926), fmix64(0xcbf29ce484222325))
	assert.Equal(t, uint64(0x82a2a958a9bece5b), fmix64(fnv1a.HashBytes64([]byte("a"))))
}

// Raw FNV-1a over short sequential keys overestimates by more than 25% at p=14.
func TestFnv1aShortKeysAccuracy(t *testing.T) {
	const n = 100000

	h := mustNewHll(t, 14, "fnv1a")
	for i := uint32(0); i < n; i++ {
		h.Add(le32(i))
	}

	relErr := math.Abs(float64(h.Cardinality())-n) / n
	assert.Tf(t, relErr <= 4/math.Sqrt(1<<14), "error %v", relErr)
}
