package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor
var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

func InitInputProcessor() {
	globalInputProcessor = NewInputProcessor(GetInputMapping())

	numJoysticks := sdl.NumJoysticks()
	GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller == nil {
				GetInternalLogger().Error("Failed to open game controller", "index", i)
				continue
			}
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
			gameControllers = append(gameControllers, controller)
			continue
		}

		joystick := sdl.JoystickOpen(i)
		if joystick == nil {
			GetInternalLogger().Debug("Failed to open raw joystick", "index", i)
			continue
		}
		GetInternalLogger().Debug("Opened raw joystick", "index", i, "name", joystick.Name())
		rawJoysticks = append(rawJoysticks, joystick)
	}
}

func closeInputProcessor() {
	for _, controller := range gameControllers {
		controller.Close()
	}
	for _, joystick := range rawJoysticks {
		joystick.Close()
	}
	gameControllers = nil
	rawJoysticks = nil
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

// Processor turns raw SDL input events into virtual button events.
type Processor struct {
	mapping    *InputMapping
	hatStates  map[uint8]uint8
	eventQueue []*Event
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	return &Processor{
		mapping:   mapping,
		hatStates: make(map[uint8]uint8),
	}
}

// ProcessSDLEvent returns the virtual button event for an SDL event, or nil when the input is not mapped.
// A hat moving directly between two directions yields a release followed by a queued press.
func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	if len(ip.eventQueue) > 0 {
		evt := ip.eventQueue[0]
		ip.eventQueue = ip.eventQueue[1:]
		return evt
	}

	logger := GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		if button, ok := ip.mapping.KeyboardMap[e.Keysym.Sym]; ok {
			return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Source: SourceKeyboard, RawCode: int(e.Keysym.Sym)}
		}
		logger.Debug("Keyboard input not mapped", "key_code", fmt.Sprintf("%s (%d)", sdl.GetKeyName(e.Keysym.Sym), e.Keysym.Sym))

	case *sdl.ControllerButtonEvent:
		if button, ok := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; ok {
			return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN, Source: SourceController, RawCode: int(e.Button)}
		}
		logger.Debug("Controller button not mapped", "button_code", e.Button)

	case *sdl.JoyButtonEvent:
		if button, ok := ip.mapping.JoystickButtonMap[e.Button]; ok {
			return &Event{Button: button, Pressed: e.Type == sdl.JOYBUTTONDOWN, Source: SourceJoystick, RawCode: int(e.Button)}
		}
		logger.Debug("Joy button not mapped", "button_code", e.Button)

	case *sdl.JoyHatEvent:
		return ip.processHat(e.Hat, e.Value)
	}

	return nil
}

func (ip *Processor) processHat(hat, value uint8) *Event {
	previous := ip.hatStates[hat]
	ip.hatStates[hat] = value

	if previous == value {
		return nil
	}

	var release *Event
	if previous != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[previous]; ok {
			release = &Event{Button: button, Pressed: false, Source: SourceHatSwitch, RawCode: int(previous)}
		}
	}

	var press *Event
	if value != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[value]; ok {
			press = &Event{Button: button, Pressed: true, Source: SourceHatSwitch, RawCode: int(value)}
		}
	}

	if release != nil {
		if press != nil {
			ip.eventQueue = append(ip.eventQueue, press)
		}
		return release
	}

	return press
}

// Pending reports whether queued events remain to be drained with ProcessSDLEvent(nil).
func (ip *Processor) Pending() bool {
	return len(ip.eventQueue) > 0
}
