package crypto

// HashProvider is the narrow hashing interface used by the header codec.
// Block hashes are the legacy Keccak-256 digest, not FIPS SHA3-256.
type HashProvider interface {
	Keccak256(input ...[]byte) [32]byte
}

// Default is the provider used when callers do not supply one.
var Default HashProvider = KeccakProvider{}

// Keccak256 hashes input with the Default provider.
func Keccak256(input ...[]byte) [32]byte {
	return Default.Keccak256(input...)
}
