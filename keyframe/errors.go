package keyframe

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyTimeline = errors.New("keyframe: timeline is empty")
	ErrFrameNotFound = errors.New("keyframe: no frame at or after tick")
	// ErrCursorFrame is returned when deleting a frame the player is interpolating from or to.
	ErrCursorFrame = errors.New("keyframe: frame is under the player cursor")
)
