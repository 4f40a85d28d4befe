package fsa

import (
	_ "embed"
)

// Version is the release of the fsa module, embedded from the VERSION file.
//
//go:embed VERSION
var Version string
