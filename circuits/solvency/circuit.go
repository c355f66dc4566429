package solvency

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"
	"github.com/vocdoni/solvency-z-sandbox/circuits"
)

// Circuit proves that one account's (hash, balance) pair is a genuine leaf
// of a committed merkle sum tree and that the tree's aggregated balance is
// strictly below the disclosed total assets threshold.
//
// The public witness is serialized in struct field order, so the verifier
// must lay out its inputs as: leaf hash, leaf balance, root hash, total
// assets. The per level witness is private to the prover and is consumed
// leaf to root, one entry per tree depth. The depth is fixed when the
// circuit is compiled, use Placeholder to size it.
type Circuit struct {
	LeafHash    frontend.Variable `gnark:",public"`
	LeafBalance frontend.Variable `gnark:",public"`
	RootHash    frontend.Variable `gnark:",public"`
	TotalAssets frontend.Variable `gnark:",public"`

	// authentication path, leaf to root
	SiblingHashes   []frontend.Variable
	SiblingBalances []frontend.Variable
	PathBits        []frontend.Variable
}

// Placeholder returns an empty Circuit sized for the given tree depth,
// ready to be compiled. A depth outside (0, SolvencyProofMaxLevels] is a
// configuration error.
func Placeholder(levels int) (*Circuit, error) {
	if levels <= 0 || levels > circuits.SolvencyProofMaxLevels {
		return nil, fmt.Errorf("unsupported tree depth %d (max %d)",
			levels, circuits.SolvencyProofMaxLevels)
	}
	return &Circuit{
		SiblingHashes:   make([]frontend.Variable, levels),
		SiblingBalances: make([]frontend.Variable, levels),
		PathBits:        make([]frontend.Variable, levels),
	}, nil
}

// Define declares the circuit's constraints: the balance range checks, one
// hashing level per depth, the root equality and the solvency bound.
func (c *Circuit) Define(api frontend.API) error {
	levels := len(c.SiblingHashes)
	if levels == 0 || len(c.SiblingBalances) != levels || len(c.PathBits) != levels {
		return fmt.Errorf("inconsistent witness shape: %d hashes, %d balances, %d bits",
			levels, len(c.SiblingBalances), len(c.PathBits))
	}
	chip, err := NewMerkleSumTreeChip(api)
	if err != nil {
		circuits.FrontendError(api, "failed to configure merkle sum tree chip", err)
		return err
	}

	// balances are small non-negative integers embedded in the field, pin
	// every one of them to the balance width so the running sum cannot wrap
	// the modulus at any realistic depth
	ranger := rangecheck.New(api)
	ranger.Check(c.LeafBalance, circuits.BalanceBits)
	for _, balance := range c.SiblingBalances {
		ranger.Check(balance, circuits.BalanceBits)
	}

	node := chip.AssignLeaf(c.LeafHash, c.LeafBalance)
	for i := 0; i < levels; i++ {
		node, err = chip.ProveLevel(node, c.SiblingHashes[i], c.SiblingBalances[i], c.PathBits[i])
		if err != nil {
			circuits.FrontendError(api, "failed to prove merkle sum tree level", err)
			return err
		}
	}

	chip.ExposePublic(node.Hash, c.RootHash)
	chip.EnforceTotalLessThan(node.Sum, c.TotalAssets)
	return nil
}
