package store

import "encoding/binary"

// Hash-set snapshot wire format, little endian:
//
//	[u32 allowCount][u32 denyCount][u64 x allowCount][u64 x denyCount]
//
// The counts are written first so a decoder can validate the byte length
// before touching the entries.

const hashSetsHeaderSize = 8

// EncodeHashSets serialises the allow and deny fingerprint sets into a
// single snapshot blob.
func EncodeHashSets(allow, deny []uint64) []byte {
	buf := make([]byte, hashSetsHeaderSize+8*(len(allow)+len(deny)))

	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(allow)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(deny)))

	offset := hashSetsHeaderSize
	for _, h := range allow {
		binary.LittleEndian.PutUint64(buf[offset:], h)
		offset += 8
	}
	for _, h := range deny {
		binary.LittleEndian.PutUint64(buf[offset:], h)
		offset += 8
	}

	return buf
}

// DecodeHashSets parses a snapshot produced by [EncodeHashSets].
//
// A snapshot whose declared counts do not match its byte length returns
// [ErrSnapshotCorrupted]; the caller should discard it and start empty
// rather than trust a partial read.
func DecodeHashSets(data []byte) (allow, deny []uint64, err error) {
	if len(data) < hashSetsHeaderSize {
		return nil, nil, ErrSnapshotCorrupted
	}

	allowCount := binary.LittleEndian.Uint32(data[0:4])
	denyCount := binary.LittleEndian.Uint32(data[4:8])

	want := uint64(hashSetsHeaderSize) + 8*(uint64(allowCount)+uint64(denyCount))
	if uint64(len(data)) != want {
		return nil, nil, ErrSnapshotCorrupted
	}

	offset := hashSetsHeaderSize
	allow = make([]uint64, 0, allowCount)
	for i := uint32(0); i < allowCount; i++ {
		allow = append(allow, binary.LittleEndian.Uint64(data[offset:]))
		offset += 8
	}
	deny = make([]uint64, 0, denyCount)
	for i := uint32(0); i < denyCount; i++ {
		deny = append(deny, binary.LittleEndian.Uint64(data[offset:]))
		offset += 8
	}

	return allow, deny, nil
}
