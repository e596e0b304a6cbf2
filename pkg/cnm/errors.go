package cnm

import (
	"errors"

	"github.com/nucleus/cnm-core/pkg/cnmerr"
)

var (
	errMergeRetiredCommunity = errors.New("merge input is already retired")
	errSelfMerge             = errors.New("a community cannot be merged with itself")
	errTopHasNoBest          = errors.New("global heap top has no best neighbor")
)

func invalidArg(op, msg string) error {
	return cnmerr.InvalidArgumentf(op, "%s", msg)
}

func internalErr(op, invariant string, cause error) error {
	return cnmerr.Internal(op, invariant, cause)
}

func cancelledErr(op string) error {
	return cnmerr.Cancelled(op)
}
