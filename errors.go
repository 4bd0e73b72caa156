package flyer

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step an error occurred in.
type Stage string

const (
	StageConfigure Stage = "configure"
	StageResolve   Stage = "resolve"
	StageFetch     Stage = "fetch"
	StageExtract   Stage = "extract"
	StageSummarize Stage = "summarize"
	StageMerge     Stage = "merge"
	StageLayout    Stage = "layout"
	StageRender    Stage = "render"
)

// Kind classifies a fatal pipeline error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidConfig
	KindTemplateNotFound
	KindAssetUnavailable
	KindUnsupportedAsset
	KindRenderFailed
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidConfig:
		return "invalid configuration"
	case KindTemplateNotFound:
		return "template not found"
	case KindAssetUnavailable:
		return "asset unavailable"
	case KindUnsupportedAsset:
		return "unsupported asset"
	case KindRenderFailed:
		return "render failed"
	default:
		return "unknown"
	}
}

// Error is a fatal pipeline error. No document is produced alongside it.
type Error struct {
	Stage Stage
	Kind  Kind
	RunID string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("flyer: %s: %s", e.Stage, e.Kind)
	}
	return fmt.Sprintf("flyer: %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a pipeline Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of a pipeline error, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
