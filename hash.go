package hll

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
	metro "github.com/dgryski/go-metro"
	"github.com/pkg/errors"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/spaolacci/murmur3"
)

// HashFunc maps an element to a uniformly distributed 64-bit value.
type HashFunc func([]byte) uint64

// DefaultHash is used when NewHll is given an empty hash identifier.
const DefaultHash = "sha1"

const metroSeed = 1337

var hashes = map[string]HashFunc{
	"sha1": func(b []byte) uint64 {
		sum := sha1.Sum(b)
		return binary.LittleEndian.Uint64(sum[0:8])
	},
	"md5": func(b []byte) uint64 {
		sum := md5.Sum(b)
		return binary.LittleEndian.Uint64(sum[0:8])
	},
	"sha256": func(b []byte) uint64 {
		sum := sha256.Sum256(b)
		return binary.LittleEndian.Uint64(sum[0:8])
	},
	"metro": func(b []byte) uint64 {
		return metro.Hash64(b, metroSeed)
	},
	"xxhash":  xxhash.Sum64,
	"murmur3": murmur3.Sum64,
	"farm":    farm.Fingerprint64,
	"fnv1a": func(b []byte) uint64 {
		return fmix64(fnv1a.HashBytes64(b))
	},
}

// fmix64 is the murmur3 64-bit finalizer. FNV-1a leaves the high bits of short inputs
// poorly mixed, and the rank is read from those bits.
func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// LookupHash returns the hash function registered under id.
func LookupHash(id string) (HashFunc, error) {
	fn, ok := hashes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q", id)
	}
	return fn, nil
}

// HashIdentifiers returns the registered hash identifiers in sorted order.
func HashIdentifiers() []string {
	ids := make([]string, 0, len(hashes))
	for id := range hashes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
