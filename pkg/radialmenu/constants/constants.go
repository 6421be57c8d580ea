package constants

import (
	"os"
	"strings"
	"time"
)

const (
	DefaultInputDelay = 20 * time.Millisecond

	// DefaultMenuAnimationDuration is how long one open or close transition takes.
	DefaultMenuAnimationDuration = 300 * time.Millisecond
	// ProgressEpsilon is how close progress must get to its target before the transition is committed.
	ProgressEpsilon = 1e-3
	// DefaultRadiusRatio scales the menu radius against the shorter screen edge.
	DefaultRadiusRatio = 0.3
	// DefaultScrimAlpha is the scrim opacity when the menu is fully open.
	DefaultScrimAlpha uint8 = 128

	FrameDelay = 16

	DevModeEnvVar        = "ENVIRONMENT"
	DebugEnvVar          = "RADIAL_DEBUG"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
)

func IsDevMode() bool {
	return strings.EqualFold(os.Getenv(DevModeEnvVar), "DEV")
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "Unknown"
}
