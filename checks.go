//go:build !spatial_unchecked

package spatial

// validate selects the validated build profile: argument, bounds and query
// precondition checks are active and fail fast with a typed *Error.
// Build with -tags spatial_unchecked to compile every check out of the hot
// paths; violating a documented precondition is then unspecified behavior.
const validate = true
