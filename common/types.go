package common

import (
	"encoding/hex"

	gethcommon "github.com/ethereum/go-ethereum/common"
)

// HashLength is the expected length of a block hash.
const HashLength = gethcommon.HashLength

// Hash represents the 32 byte hash of a block.
type Hash = gethcommon.Hash

// Bytes represents bytes type.
type Bytes []byte

func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// HexToHash sets byte representation of s to hash. A "0x" prefix is optional.
func HexToHash(s string) Hash {
	return gethcommon.HexToHash(s)
}

// IsHexHash reports whether s is a well formed 32 byte hex hash, with or
// without the "0x" prefix.
func IsHexHash(s string) bool {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 2*HashLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return
}
