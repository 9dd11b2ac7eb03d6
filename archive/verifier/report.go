package verifier

// VerificationReport summarizes the outcome of one Verify call.
type VerificationReport struct {
	Checked    int64
	Mismatches int64
	NoDigest   int64 // entries with digest_id = none, skipped

	MismatchedPaths []string
	Warnings        []string
}
