package verifier

import (
	"github.com/NethermindEth/eth-rlp-verify/types"
)

var defaultVerifier = mustVerifier()

func mustVerifier() *Verifier {
	v, err := NewVerifier()
	if err != nil {
		panic(err)
	}
	return v
}

// VerifyBlock reports whether expectedHashHex is the hash of header as block
// number of chainID. Unsupported eras, malformed input and mismatches are all
// false.
func VerifyBlock(number uint64, header types.BlockHeader, expectedHashHex string, chainID uint64) bool {
	return defaultVerifier.Verify(number, &header, expectedHashHex, chainID)
}

// AreBlocksValid verifies each header against its own number and hash.
func AreBlocksValid(headers []types.BlockHeader, chainID uint64) bool {
	return defaultVerifier.CheckSequence(headers, chainID, false) == nil
}

// AreBlocksAndChainValid is AreBlocksValid plus parent-hash linkage between
// consecutive headers.
func AreBlocksAndChainValid(headers []types.BlockHeader, chainID uint64) bool {
	return defaultVerifier.CheckSequence(headers, chainID, true) == nil
}

// EncodeBlockHeader returns the RLP encoding of header under the layout of
// block number's era.
func EncodeBlockHeader(number uint64, header types.BlockHeader, chainID uint64) ([]byte, error) {
	return defaultVerifier.Encode(number, &header, chainID)
}

// DecodeBlockHeader parses an RLP encoded header of block number's era.
func DecodeBlockHeader(number uint64, data []byte, chainID uint64) (types.BlockHeader, error) {
	return defaultVerifier.Decode(number, data, chainID)
}
