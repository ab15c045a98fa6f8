package filter

import "errors"

var (
	// ErrInputShape reports a document whose structure breaks an assumption
	// the filter cannot work around. A run failing with it produces no
	// output.
	ErrInputShape = errors.New("unexpected input shape")

	ErrConfig          = errors.New("bad config")
	ErrContainerExists = errors.New("container op exists")
)
