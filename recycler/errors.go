package recycler

import "errors"

// ErrNegativeActivity indicates RandomIndependentSet was called with a
// strictly negative lambdaTarget. lambdaTarget == 0 is valid: it returns the
// empty independent set with probability 1 (see the idempotence test in
// recycler_test.go), so zero itself is not rejected here.
var ErrNegativeActivity = errors.New("recycler: lambda target must be non-negative")
