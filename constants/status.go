package constants

// OutcomeStatus is the per-document result of a pipeline run.
type OutcomeStatus string

// Stable values (store these exact strings in the document metadata).
const (
	OutcomeStored  OutcomeStatus = "STORED"  // record extracted and persisted
	OutcomeSkipped OutcomeStatus = "SKIPPED" // structural miss, nothing usable
	OutcomeFailed  OutcomeStatus = "FAILED"  // I/O or parse failure at the boundary
)
