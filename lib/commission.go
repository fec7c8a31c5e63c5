package lib

// CommissionPercent is the platform's fixed cut of every order line, in
// whole percent
const CommissionPercent = 15

// SplitAmount divides a line total in cents between the supplier and the
// platform. The commission is floored, the supplier receives the remainder,
// and the two parts always sum to the input. This is the only place the
// split is computed; order items and ledger rows both derive from it.
func SplitAmount(total uint64) (supplierAmount, commissionAmount uint64) {
	commissionAmount = total * CommissionPercent / 100
	supplierAmount = total - commissionAmount
	return supplierAmount, commissionAmount
}
