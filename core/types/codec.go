package types

// BytesDecoder defines an interface for decoding an object from the raw bytes of an option value.
type BytesDecoder interface {
	DecodeFromBytes([]byte) error
}

// BytesEncoder defines an interface for encoding a command result to bytes.
type BytesEncoder interface {
	EncodeToBytes() ([]byte, error)
}
