// Package poseidon exposes the circom compatible Poseidon permutation as a
// fixed arity compression function, used as the node combiner of the merkle
// sum tree. While the permutation itself is already implemented in
// gnark-crypto-primitives, there is no wrapper that pins the sponge
// parameters down to a single compression shape usable by other circuits.
//
// The instantiation is fixed to state width 5 and rate 4 over the BN254
// scalar field: 8 full rounds, 60 partial rounds, x^5 S-box, and the
// circomlib round constant and MDS tables for that width. The tables are
// static data shipped with the permutation library, regenerated per target
// field and never derived at runtime. The same parameterization is
// implemented natively by crypto/hash/poseidon, so witness generators can
// compute the digests the circuit expects.
package poseidon

import (
	"github.com/consensys/gnark/frontend"
	gposeidon "github.com/vocdoni/gnark-crypto-primitives/poseidon"
)

const (
	// Width is the sponge state width (rate plus one capacity element).
	Width = 5
	// Rate is the number of state elements absorbed per permutation call.
	Rate = 4
	// Arity is the number of input cells compressed into one digest. It
	// matches Rate, every call absorbs a single full block.
	Arity = 4
)

// Hasher wires the 4-to-1 Poseidon compression into a circuit. The zero
// value is not usable, get one with NewHasher during circuit definition and
// reuse it for every call, the underlying constraint layout is identical on
// each invocation.
type Hasher struct {
	api frontend.API
}

// NewHasher returns a Hasher bound to the given constraint builder.
func NewHasher(api frontend.API) Hasher {
	return Hasher{api: api}
}

// Hash absorbs exactly Arity input cells into a fresh sponge state (capacity
// element fixed to zero, the same constant length padding on every call) and
// returns the squeezed output cell. It is a deterministic pure function of
// its inputs. The arity is enforced by the array type, a mismatched input
// count is a compile error rather than a runtime condition.
func (h Hasher) Hash(inputs [Arity]frontend.Variable) (frontend.Variable, error) {
	return gposeidon.Hash(h.api, inputs[:]...)
}
