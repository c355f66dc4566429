package poseidon

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLeaf(t *testing.T) {
	c := qt.New(t)

	h1, err := Leaf(big.NewInt(42), big.NewInt(10))
	c.Assert(err, qt.IsNil)
	h2, err := Leaf(big.NewInt(42), big.NewInt(10))
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Cmp(h2), qt.Equals, 0)

	h3, err := Leaf(big.NewInt(42), big.NewInt(11))
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Cmp(h3), qt.Not(qt.Equals), 0)

	_, err = Leaf(nil, big.NewInt(1))
	c.Assert(err, qt.IsNotNil)
}

func TestMiddleNodeDeterminism(t *testing.T) {
	c := qt.New(t)

	inputs := []*big.Int{big.NewInt(1), big.NewInt(10), big.NewInt(2), big.NewInt(20)}
	h1, err := MiddleNode(inputs[0], inputs[1], inputs[2], inputs[3])
	c.Assert(err, qt.IsNil)
	h2, err := MiddleNode(inputs[0], inputs[1], inputs[2], inputs[3])
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Cmp(h2), qt.Equals, 0)
}

func TestMiddleNodeSensitivity(t *testing.T) {
	c := qt.New(t)

	base := []*big.Int{big.NewInt(1), big.NewInt(10), big.NewInt(2), big.NewInt(20)}
	ref, err := MiddleNode(base[0], base[1], base[2], base[3])
	c.Assert(err, qt.IsNil)
	for i := range base {
		mutated := make([]*big.Int, len(base))
		copy(mutated, base)
		mutated[i] = new(big.Int).Add(base[i], big.NewInt(1))
		h, err := MiddleNode(mutated[0], mutated[1], mutated[2], mutated[3])
		c.Assert(err, qt.IsNil)
		c.Assert(h.Cmp(ref), qt.Not(qt.Equals), 0, qt.Commentf("input %d", i))
	}
}

func TestMiddleNodeNilInput(t *testing.T) {
	c := qt.New(t)
	_, err := MiddleNode(big.NewInt(1), nil, big.NewInt(2), big.NewInt(3))
	c.Assert(err, qt.IsNotNil)
}
