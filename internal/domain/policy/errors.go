package policy

import "errors"

// ErrPolicyNotFound is returned by a PolicyRepository when a company has no
// stored policy. Callers substitute the documented defaults.
var ErrPolicyNotFound = errors.New("company policy not found")
