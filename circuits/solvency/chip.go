package solvency

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/solvency-z-sandbox/circuits"
	"github.com/vocdoni/solvency-z-sandbox/circuits/lessthan"
	"github.com/vocdoni/solvency-z-sandbox/circuits/poseidon"
)

// Node links the running hash and balance sum of one tree level. The two
// variables are handles to already constrained cells, passing a Node into
// the next ProveLevel call threads those cells forward (an equality
// relation on wires, not shared mutable state). Nodes are never mutated
// once returned.
type Node struct {
	Hash frontend.Variable
	Sum  frontend.Variable
}

// MerkleSumTreeChip verifies one authentication path of a merkle sum tree,
// from an account leaf up to the committed root, plus a final solvency
// bound on the aggregated balance. It composes the Poseidon compression
// gadget with the less-than gadget and emits, per level:
//
//   - bool:  e * (1 - e) = 0 on the direction bit
//   - swap:  the ordered (left, right) placement of the previous node
//     against the sibling, which for a boolean bit admits exactly the
//     identity (bit 0) and the fully swapped (bit 1) assignments
//   - sum:   left_balance + right_balance = level_sum
//   - hash:  Poseidon(left_hash, left_balance, right_hash, right_balance)
//
// and, once at the top, lt: is_lt(total_sum, total_assets) = 1.
//
// The chip holds no per-proof state: configure it once inside Define and
// drive it with the fixed linear sequence leaf -> levels -> bound. One
// circuit instance proves exactly one path, the chain of Nodes is an
// explicit list walk, never a recursive tree traversal.
type MerkleSumTreeChip struct {
	api    frontend.API
	hasher poseidon.Hasher
	lt     *lessthan.Checker
}

// NewMerkleSumTreeChip configures the chip on the given constraint builder.
// Configuration contract violations surface here as errors, before any
// witness is assigned.
func NewMerkleSumTreeChip(api frontend.API) (*MerkleSumTreeChip, error) {
	lt, err := lessthan.New(api, circuits.BalanceNbLimbs, circuits.BalanceLimbBits)
	if err != nil {
		return nil, fmt.Errorf("configure less-than checker: %w", err)
	}
	return &MerkleSumTreeChip{
		api:    api,
		hasher: poseidon.NewHasher(api),
		lt:     lt,
	}, nil
}

// AssignLeaf seeds the level chain with the prover's account leaf. No
// constraint is emitted here, the returned Node just carries the two cells
// into the first ProveLevel call.
func (chip *MerkleSumTreeChip) AssignLeaf(leafHash, leafBalance frontend.Variable) Node {
	return Node{Hash: leafHash, Sum: leafBalance}
}

// ProveLevel consumes the previous level's Node together with one private
// level witness (sibling hash, sibling balance, direction bit) and returns
// the next level's Node. The direction bit steers which operand lands on
// the left of the hash: 0 keeps the previous node on the left, 1 swaps it
// with the sibling. The select constraints validate the placement, the
// witness solver computes the chosen branch.
func (chip *MerkleSumTreeChip) ProveLevel(prev Node, siblingHash, siblingBalance,
	directionBit frontend.Variable) (Node, error) {
	api := chip.api
	api.AssertIsBoolean(directionBit)

	leftHash := api.Select(directionBit, siblingHash, prev.Hash)
	leftBalance := api.Select(directionBit, siblingBalance, prev.Sum)
	rightHash := api.Select(directionBit, prev.Hash, siblingHash)
	rightBalance := api.Select(directionBit, prev.Sum, siblingBalance)

	levelSum := api.Add(leftBalance, rightBalance)
	levelHash, err := chip.hasher.Hash([poseidon.Arity]frontend.Variable{
		leftHash, leftBalance, rightHash, rightBalance,
	})
	if err != nil {
		return Node{}, fmt.Errorf("hash level nodes: %w", err)
	}
	return Node{Hash: levelHash, Sum: levelSum}, nil
}

// EnforceTotalLessThan bounds the final aggregated sum strictly below the
// total assets threshold. When sum >= totalAssets no satisfying limb
// decomposition with the expected flag exists, so the trace becomes
// unsatisfiable: the solvency check is structural, there is no runtime
// comparison to bypass.
func (chip *MerkleSumTreeChip) EnforceTotalLessThan(sum, totalAssets frontend.Variable) {
	chip.lt.AssertIsLess(sum, totalAssets)
}

// ExposePublic pins an internal cell to a public input with an equality
// constraint. Used for the root hash, the leaf cells are public to begin
// with and need no extra constraint.
func (chip *MerkleSumTreeChip) ExposePublic(cell, public frontend.Variable) {
	chip.api.AssertIsEqual(cell, public)
}
