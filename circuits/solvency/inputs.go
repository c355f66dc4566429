package solvency

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/arbo"
	"github.com/vocdoni/solvency-z-sandbox/circuits"
)

// LevelWitness is one step of the authentication path as produced by the
// external merkle sum tree builder: the sibling node at that depth and the
// position of the proven subtree (0 left, 1 right).
type LevelWitness struct {
	SiblingHash    []byte
	SiblingBalance *big.Int
	Direction      int
}

// Inputs gathers everything the prover needs for one solvency proof: the
// account leaf, the ordered level witnesses (leaf to root) and the public
// values the verifier will check against. Hashes cross this boundary as
// byte slices, the way the tree builder serializes them.
type Inputs struct {
	LeafHash    []byte
	LeafBalance *big.Int
	RootHash    []byte
	TotalAssets *big.Int
	Levels      []LevelWitness
}

// Validate checks the witness shape before any circuit work: a malformed
// level list or a non binary direction is a caller bug and is reported
// eagerly, instead of surfacing later as an opaque unsatisfied constraint.
func (in *Inputs) Validate() error {
	if len(in.Levels) == 0 || len(in.Levels) > circuits.SolvencyProofMaxLevels {
		return fmt.Errorf("unsupported number of levels %d (max %d)",
			len(in.Levels), circuits.SolvencyProofMaxLevels)
	}
	if in.LeafBalance == nil || in.TotalAssets == nil {
		return fmt.Errorf("missing leaf balance or total assets")
	}
	for i, level := range in.Levels {
		if level.SiblingBalance == nil {
			return fmt.Errorf("missing sibling balance at level %d", i)
		}
		if level.Direction != 0 && level.Direction != 1 {
			return fmt.Errorf("direction at level %d must be binary, got %d",
				i, level.Direction)
		}
	}
	return nil
}

// Assignment converts the inputs into an assignment for a circuit compiled
// with Placeholder(len(in.Levels)).
func (in *Inputs) Assignment() (*Circuit, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid solvency inputs: %w", err)
	}
	assignment := &Circuit{
		LeafHash:        arbo.BytesToBigInt(in.LeafHash),
		LeafBalance:     in.LeafBalance,
		RootHash:        arbo.BytesToBigInt(in.RootHash),
		TotalAssets:     in.TotalAssets,
		SiblingHashes:   make([]frontend.Variable, len(in.Levels)),
		SiblingBalances: make([]frontend.Variable, len(in.Levels)),
		PathBits:        make([]frontend.Variable, len(in.Levels)),
	}
	for i, level := range in.Levels {
		assignment.SiblingHashes[i] = arbo.BytesToBigInt(level.SiblingHash)
		assignment.SiblingBalances[i] = level.SiblingBalance
		assignment.PathBits[i] = level.Direction
	}
	return assignment, nil
}
