// Package constants provides shared constants used throughout the guidemap
// codebase. This includes vote thresholds, lifecycle labels, timeouts, and
// file permissions that should be consistent across the application.
package constants

import "time"

// Voting constants govern when a proposal becomes eligible for validation.
const (
	// VoteThreshold is the minimum net vote count (upvotes minus downvotes)
	// a moderator-approved proposal needs before validation is attempted.
	VoteThreshold = 100
)

// Lifecycle labels mark proposal state on the tracking record.
const (
	// LabelPending marks a proposal that is still collecting votes.
	LabelPending = "pending-votes"

	// LabelModApproved marks a proposal a moderator has cleared for validation.
	LabelModApproved = "mod-approved"

	// LabelAccepted marks a proposal whose place was added to the guide.
	LabelAccepted = "accepted"

	// LabelRejected marks a proposal a moderator explicitly declined.
	LabelRejected = "rejected"

	// LabelValidationFailed marks a proposal whose city could not be verified.
	LabelValidationFailed = "validation-failed"

	// LabelLookupRetryPrefix prefixes the bounded retry counter recorded on a
	// proposal after a transient geocoder failure, e.g. "lookup-retry-2".
	LabelLookupRetryPrefix = "lookup-retry-"
)

// Geocoder constants bound external lookup behavior.
const (
	// LookupTimeout is the timeout for a single geocoder request.
	LookupTimeout = 10 * time.Second

	// LookupAttempts is the number of attempts per geocoder call within one pass.
	LookupAttempts = 3

	// LookupBackoff is the base backoff duration between geocoder attempts.
	LookupBackoff = 1 * time.Second

	// MaxLookupRetries is the number of reconciliation passes a transient
	// geocoder failure is retried across before converting to a permanent
	// validation failure.
	MaxLookupRetries = 3

	// DefaultNominatimURL is the public OpenStreetMap Nominatim endpoint.
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"

	// UserAgent identifies guidemap to the geocoding service.
	UserAgent = "guidemap-bot/1.0"
)

// Tree constants name the fixed points of the directory layout.
const (
	// CountriesDir is the root directory of the place tree.
	CountriesDir = "countries"

	// IndexFile is the name of the generated index document at each level.
	IndexFile = "README.md"

	// GeocacheFile is the cross-run geocoder cache, relative to the tree root.
	GeocacheFile = ".guidemap/geocache.yaml"
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
