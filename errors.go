package rtscene

import "errors"

// Sentinel errors shared across the module.
var (
	// ErrEmptyScene is returned when a scene description has no free
	// shapes and no object instances.
	ErrEmptyScene = errors.New("rtscene: scene description has no top-level elements")

	// ErrUnknownObject is returned when an object instance references
	// an object name absent from the scene description.
	ErrUnknownObject = errors.New("rtscene: instance references unknown object")

	// ErrIndexRange is returned when a shape or instance index is out
	// of range for the scene description.
	ErrIndexRange = errors.New("rtscene: index out of range")

	// ErrNotDecomposable is returned when Decompose is called on a
	// leaf proxy. This is a contract violation, never retried.
	ErrNotDecomposable = errors.New("rtscene: proxy is not decomposable")

	// ErrDecomposable is returned when CreateGeometry is called on a
	// proxy that must be decomposed first, including any fine-policy
	// object-instance proxy. This is a contract violation.
	ErrDecomposable = errors.New("rtscene: cannot create geometry for a decomposable proxy")

	// ErrNoMatchingShapes is returned when an instance-primitive proxy
	// is requested for a (primitive kind, material signature) cell
	// that matches none of the instance's shapes.
	ErrNoMatchingShapes = errors.New("rtscene: no shapes match primitive and material signature")

	// ErrBadGranularity is returned for an unrecognized granularity
	// name.
	ErrBadGranularity = errors.New("rtscene: unrecognized granularity")
)
