package tree24

import "errors"

var (
	// ErrInternalInconsistency signals a layout-engine state that correct
	// span propagation cannot produce. It marks a programming error inside
	// this package, never a property of the inspected tree; structural
	// defects of the tree are reported as Violations instead.
	ErrInternalInconsistency = errors.New("tree24: internal inconsistency")
)
