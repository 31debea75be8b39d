package entities

import "errors"

var (
	// ErrUnknownAct is returned for act numbers outside 1..3.
	ErrUnknownAct = errors.New("unknown act")

	// ErrInvalidBuildData is returned when the build-equipment dataset does not match its schema.
	ErrInvalidBuildData = errors.New("invalid build equipment data")

	// ErrCatalogNotFound is returned when catalog artifacts have not been generated yet.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrUnknownItem is returned for item IDs that are not in the catalog.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnknownBuild is returned for build names missing from the build-equipment dataset.
	ErrUnknownBuild = errors.New("unknown build")
)
