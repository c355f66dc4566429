// Package poseidon provides the native counterpart of the in-circuit
// Poseidon compression: the circom compatible instantiation over the BN254
// scalar field, so digests computed here match the ones the solvency
// circuit reconstructs.
package poseidon

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// Leaf returns the hash of an account leaf, H(key, balance). The key is
// whatever field embedded identifier the tree builder assigns to the
// account (typically a hash of the username).
func Leaf(key, balance *big.Int) (*big.Int, error) {
	if key == nil || balance == nil {
		return nil, fmt.Errorf("nil leaf input")
	}
	return poseidon.Hash([]*big.Int{key, balance})
}

// MiddleNode returns the 4-to-1 compression of two sibling nodes,
// H(leftHash, leftSum, rightHash, rightSum). This is the width 5 / rate 4
// sponge with 8 full and 60 partial rounds that the circuit's hasher
// implements.
func MiddleNode(leftHash, leftSum, rightHash, rightSum *big.Int) (*big.Int, error) {
	inputs := []*big.Int{leftHash, leftSum, rightHash, rightSum}
	for _, in := range inputs {
		if in == nil {
			return nil, fmt.Errorf("nil middle node input")
		}
	}
	return poseidon.Hash(inputs)
}
