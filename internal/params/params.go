package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// BytesScalar is the width of the canonical big-endian scalar encoding.
	BytesScalar = 32

	// BytesCoordinate is the width of one field element in the SEC1 encoding.
	BytesCoordinate = 32

	// BytesPoint is the length of the uncompressed affine encoding 0x04 ∥ x ∥ y.
	BytesPoint = 1 + 2*BytesCoordinate

	// BytesPID is the width of the big-endian prover identifier in the
	// challenge transcript.
	BytesPID = 4
)
