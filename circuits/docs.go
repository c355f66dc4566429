package circuits

// The circuits package contains the zk circuits used by the proof of
// solvency protocol. The main goal of these circuits is to let a custodian
// prove that a user account is included in the liabilities commitment and
// that the aggregated liabilities stay strictly below the publicly disclosed
// total assets, without disclosing any individual balance.
// To achieve that goal, the circuits are used following these steps:
//   1. The (out of scope) merkle sum tree builder commits to every account
//      as a (hash, balance) leaf and publishes the tree root.
//   2. For each user, the prover runs the solvency circuit over the user's
//      authentication path: one hashing level per tree depth, recombining
//      sibling hashes and summing sibling balances.
//   3. The same circuit bounds the final aggregated balance with a strict
//      less-than check against the total assets threshold.
//
// All circuits run natively over BN254 and use the circom compatible
// Poseidon permutation as node combiner:
//
// +------------+
// |  Solvency  |  BN254 	<- native
// |  (chip)    |  Poseidon width 5 / rate 4, 4-to-1 compression
// +------------+
