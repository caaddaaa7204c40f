package models

// ZoomSource records what produced the current zoom factor.
type ZoomSource int

const (
	ZoomActual ZoomSource = iota
	ZoomFit
	ZoomStep
)

func (z ZoomSource) String() string {
	switch z {
	case ZoomActual:
		return "actual"
	case ZoomFit:
		return "fit"
	case ZoomStep:
		return "step"
	default:
		return "unknown"
	}
}

// ViewState holds the zoom factor applied to the current image.
type ViewState struct {
	Zoom   float64
	Source ZoomSource
}

func NewViewState() ViewState {
	return ViewState{Zoom: 1.0, Source: ZoomActual}
}
