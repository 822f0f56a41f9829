package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData is the debug top-down view: a smoothed follow position on the
// ground plane plus an eased zoom. Yaw feeds the camera-relative input
// mapping; the top-down view keeps it at zero.
type CameraData struct {
	X, Z       float64
	Yaw        float64
	Zoom       float64
	TargetZoom float64
	ZoomTween  *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
