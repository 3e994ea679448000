package proposals

// Tally returns a proposal's net support: upvotes minus downvotes.
// A negative result is valid; it simply fails the eligibility predicate.
func Tally(upvotes, downvotes int) int {
	return upvotes - downvotes
}

// Eligible reports whether net support meets the acceptance threshold.
// The check is a one-time gate: the run controller evaluates it against the
// snapshot taken at the start of a pass and never re-reads counts mid-pass.
func Eligible(net, threshold int) bool {
	return net >= threshold
}
