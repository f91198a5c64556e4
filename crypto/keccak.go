package crypto

import "golang.org/x/crypto/sha3"

// KeccakProvider computes the original Keccak-256 digest with pre-NIST padding.
type KeccakProvider struct{}

func (KeccakProvider) Keccak256(input ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range input {
		_, _ = h.Write(b)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
