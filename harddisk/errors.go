package harddisk

import "errors"

// ErrNonPositiveRadius indicates a HardDiskGraph was constructed with
// radius <= 0.
var ErrNonPositiveRadius = errors.New("harddisk: radius must be positive")
