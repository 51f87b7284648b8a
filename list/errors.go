package list

import "github.com/percona/percona-dllist/errors"

const (
	// ErrInvalidArgument is returned for a nil list, a missing or foreign node, or an
	// operation on an empty list.
	ErrInvalidArgument = errors.Sentinel("invalid argument")
	// ErrAllocation is returned when the list cannot take another node.
	ErrAllocation = errors.Sentinel("node allocation failed")
	// ErrUndefinedCapability is returned when an operation needs a capability the
	// list was not configured with.
	ErrUndefinedCapability = errors.Sentinel("undefined capability")
)
