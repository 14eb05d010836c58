// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// Setup operations.
	Init    = "Init"
	Collect = "Collect"

	// Report operations.
	MissingInfo = "MissingInfo"
	Overdue     = "Overdue"
	Stale       = "Stale"

	// Reconciliation operations.
	AddToProjects   = "AddToProjects"
	SuggestMappings = "SuggestMappings"
)

// Operations lists every operation name.
var Operations = []string{Init, Collect, MissingInfo, Overdue, Stale, AddToProjects, SuggestMappings}

// ReportOperations lists the operations producing flagged issue counts.
var ReportOperations = []string{MissingInfo, Overdue, Stale, AddToProjects}
