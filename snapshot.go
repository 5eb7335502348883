package hll

import (
	"encoding/base64"
	"encoding/json"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Snapshot is the exported state of an Hll: everything needed to rebuild an identical
// sketch. Registers holds one value per register and is never shared with a live Hll.
type Snapshot struct {
	HashID    string
	Precision int
	Registers []uint8
}

// Export returns a snapshot of the sketch state.
func (h *Hll) Export() Snapshot {
	return Snapshot{
		HashID:    h.hashID,
		Precision: int(h.p),
		Registers: h.bigM.unpack(h.m),
	}
}

// Import replaces the state of h with a copy of s. If s is not a valid snapshot, h is
// left unchanged.
func (h *Hll) Import(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	hash, err := LookupHash(s.HashID)
	if err != nil {
		return err
	}

	h.hashID = s.HashID
	h.hash = hash
	h.init(uint(s.Precision))
	h.bigM = packNormal(s.Registers)
	return nil
}

// FromSnapshot builds a new sketch from s.
func FromSnapshot(s Snapshot) (*Hll, error) {
	h := &Hll{}
	if err := h.Import(s); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks that s describes a reachable register state.
func (s Snapshot) Validate() error {
	if s.HashID == "" {
		return errors.Wrap(ErrCorruptSnapshot, "missing hash identifier")
	}
	if s.Precision < minPrecision || s.Precision > maxPrecision {
		return errors.Wrapf(ErrCorruptSnapshot, "precision %d out of range [%d,%d]", s.Precision, minPrecision, maxPrecision)
	}
	if expected := 1 << s.Precision; len(s.Registers) != expected {
		return errors.Wrapf(ErrCorruptSnapshot, "register count mismatch: expected %d, got %d", expected, len(s.Registers))
	}
	maxRank := uint8(hashWidth - s.Precision + 1)
	for i, r := range s.Registers {
		if r > maxRank {
			return errors.Wrapf(ErrCorruptSnapshot, "register %d holds %d, max is %d", i, r, maxRank)
		}
	}
	return nil
}

// When marshalling to JSON, the registers are snappy compressed and base64 encoded.
type jsonableSnapshot struct {
	HashID string `json:"h"`
	P      int    `json:"p"`
	M      string `json:"M"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	compressed, err := snappyB64(s.Registers)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&jsonableSnapshot{s.HashID, s.Precision, string(compressed)})
}

func (s *Snapshot) UnmarshalJSON(buf []byte) error {
	j := jsonableSnapshot{}
	if err := json.Unmarshal(buf, &j); err != nil {
		return errors.Wrap(ErrCorruptSnapshot, err.Error())
	}

	registers, err := unsnappyB64([]byte(j.M))
	if err != nil {
		return errors.Wrap(ErrCorruptSnapshot, err.Error())
	}

	*s = Snapshot{HashID: j.HashID, Precision: j.P, Registers: registers}
	return nil
}

// Convert the Hll struct into JSON.
func (h *Hll) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Export())
}

// Unmarshals JSON byte-array into a Hll struct.
func (h *Hll) UnmarshalJSON(buf []byte) error {
	var s Snapshot
	if err := json.Unmarshal(buf, &s); err != nil {
		return err
	}
	return h.Import(s)
}

const binaryVersion = 1

// MarshalBinary encodes the sketch as
//
//	version (1 byte) | precision (1 byte) | hash id length (1 byte) | hash id | registers (1 byte each)
func (h *Hll) MarshalBinary() ([]byte, error) {
	if len(h.hashID) > 255 {
		return nil, errors.Errorf("hash identifier too long: %d bytes", len(h.hashID))
	}

	buf := make([]byte, 0, 3+len(h.hashID)+int(h.m))
	buf = append(buf, binaryVersion, uint8(h.p), uint8(len(h.hashID)))
	buf = append(buf, h.hashID...)
	buf = append(buf, h.bigM.unpack(h.m)...)
	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (h *Hll) UnmarshalBinary(data []byte) error {
	if len(data) < 3 {
		return errors.Wrapf(ErrCorruptSnapshot, "data too short: expected at least 3 bytes, got %d", len(data))
	}
	if data[0] != binaryVersion {
		return errors.Wrapf(ErrCorruptSnapshot, "unsupported version %d", data[0])
	}

	precision, idLen := int(data[1]), int(data[2])
	data = data[3:]
	if len(data) < idLen {
		return errors.Wrapf(ErrCorruptSnapshot, "hash identifier truncated: expected %d bytes, got %d", idLen, len(data))
	}

	return h.Import(Snapshot{
		HashID:    string(data[:idLen]),
		Precision: precision,
		Registers: data[idLen:],
	})
}

// Compress the input using snappy and encode the result using URL-safe base64.
func snappyB64(in []byte) ([]byte, error) {
	compressed := snappy.Encode(nil, in)
	outBuf := make([]byte, base64.URLEncoding.EncodedLen(len(compressed)))
	base64.URLEncoding.Encode(outBuf, compressed)
	return outBuf, nil
}

// The inverse of snappyB64.
func unsnappyB64(in []byte) ([]byte, error) {
	unBase64ed := make([]byte, base64.URLEncoding.DecodedLen(len(in)))
	n, err := base64.URLEncoding.Decode(unBase64ed, in)
	if err != nil {
		return nil, err
	}

	uncompressed, err := snappy.Decode(nil, unBase64ed[:n])
	if err != nil {
		return nil, err
	}

	// The snappy library returns nil when the output length is zero.
	if uncompressed == nil {
		uncompressed = []byte{}
	}
	return uncompressed, nil
}
