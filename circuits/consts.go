package circuits

// used across different circuits
const (
	// SolvencyProofMaxLevels is the maximum depth of a merkle sum tree
	// authentication path accepted by the solvency circuit. The actual depth
	// is fixed per compiled circuit, this only bounds it.
	SolvencyProofMaxLevels = 64
	// BalanceNbLimbs and BalanceLimbBits fix the limb decomposition used by
	// the less-than gadget: 8 limbs of 8 bits, so balances and the total
	// assets threshold are 64 bit values embedded in the field.
	BalanceNbLimbs  = 8
	BalanceLimbBits = 8
	// BalanceBits is the resulting operand width of the range checks.
	BalanceBits = BalanceNbLimbs * BalanceLimbBits
)
