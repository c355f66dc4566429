// Package lessthan proves strict ordering of two field elements through a
// fixed width limb decomposition. Both operands are first range checked to
// n = nbLimbs*limbBits bits, then the borrow form a - b + 2^n is decomposed
// into n+1 bits: the top bit clears exactly when a < b, which yields a
// boolean is-less-than signal usable by other gadgets.
package lessthan

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/std/rangecheck"
)

// Checker proves a < b for operands bounded to a fixed bit width.
type Checker struct {
	api    frontend.API
	ranger frontend.Rangechecker
	nbBits int
	shift  *big.Int
}

// New returns a Checker for operands of nbLimbs limbs of limbBits bits each.
// The decomposition must leave headroom for the borrow bit inside the
// field, a configuration that does not is a programming error and is
// rejected here, before any witness is assigned.
func New(api frontend.API, nbLimbs, limbBits int) (*Checker, error) {
	if nbLimbs <= 0 || limbBits <= 0 {
		return nil, fmt.Errorf("invalid limb decomposition %d x %d bits", nbLimbs, limbBits)
	}
	nbBits := nbLimbs * limbBits
	if nbBits+1 >= api.Compiler().FieldBitLen() {
		return nil, fmt.Errorf("%d bit operands do not fit the %d bit field",
			nbBits, api.Compiler().FieldBitLen())
	}
	return &Checker{
		api:    api,
		ranger: rangecheck.New(api),
		nbBits: nbBits,
		shift:  new(big.Int).Lsh(big.NewInt(1), uint(nbBits)),
	}, nil
}

// IsLess returns 1 when a < b and 0 otherwise. It constrains both operands
// to the configured bit width, a witness outside that range makes the trace
// unsatisfiable.
func (c *Checker) IsLess(a, b frontend.Variable) frontend.Variable {
	c.ranger.Check(a, c.nbBits)
	c.ranger.Check(b, c.nbBits)
	// shifted = a - b + 2^n is in (0, 2^(n+1)) for n bit operands, so its
	// top bit is set exactly when a >= b
	shifted := c.api.Add(c.api.Sub(a, b), c.shift)
	decomposed := bits.ToBinary(c.api, shifted, bits.WithNbDigits(c.nbBits+1))
	return c.api.Sub(1, decomposed[c.nbBits])
}

// AssertIsLess pins the is-less-than signal to 1. When a >= b no satisfying
// decomposition with that flag exists, so proof generation fails with a
// constraint unsatisfied outcome.
func (c *Checker) AssertIsLess(a, b frontend.Variable) {
	c.api.AssertIsEqual(c.IsLess(a, b), 1)
}
