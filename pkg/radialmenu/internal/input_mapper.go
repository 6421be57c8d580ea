package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
)

type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	JoystickButtonMap   map[uint8]constants.VirtualButton
	JoystickHatMap      map[uint8]constants.VirtualButton
}

// Mapping is the JSON form of InputMapping. Keys are SDL codes, values are VirtualButton values.
type Mapping struct {
	KeyboardMap         map[int]int `json:"keyboard_map"`
	ControllerButtonMap map[int]int `json:"controller_button_map"`
	JoystickButtonMap   map[int]int `json:"joystick_button_map"`
	JoystickHatMap      map[int]int `json:"joystick_hat_map"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:     constants.VirtualButtonUp,
			sdl.K_DOWN:   constants.VirtualButtonDown,
			sdl.K_LEFT:   constants.VirtualButtonLeft,
			sdl.K_RIGHT:  constants.VirtualButtonRight,
			sdl.K_a:      constants.VirtualButtonA,
			sdl.K_b:      constants.VirtualButtonB,
			sdl.K_x:      constants.VirtualButtonX,
			sdl.K_y:      constants.VirtualButtonY,
			sdl.K_RETURN: constants.VirtualButtonStart,
			sdl.K_SPACE:  constants.VirtualButtonSelect,
			sdl.K_ESCAPE: constants.VirtualButtonB,
			sdl.K_h:      constants.VirtualButtonMenu,
			sdl.K_TAB:    constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
		JoystickButtonMap: map[uint8]constants.VirtualButton{},
		JoystickHatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
	}
}

// GetInputMapping prefers embedded bytes, then the file named by INPUT_MAPPING_PATH, then the default mapping.
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	if mappingPath := os.Getenv(MappingPathEnvVar); mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}

	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var serializable Mapping
	if err := json.Unmarshal(data, &serializable); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		KeyboardMap:         make(map[sdl.Keycode]constants.VirtualButton, len(serializable.KeyboardMap)),
		ControllerButtonMap: make(map[sdl.GameControllerButton]constants.VirtualButton, len(serializable.ControllerButtonMap)),
		JoystickButtonMap:   make(map[uint8]constants.VirtualButton, len(serializable.JoystickButtonMap)),
		JoystickHatMap:      make(map[uint8]constants.VirtualButton, len(serializable.JoystickHatMap)),
	}

	for code, vb := range serializable.KeyboardMap {
		mapping.KeyboardMap[sdl.Keycode(code)] = constants.VirtualButton(vb)
	}
	for code, vb := range serializable.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(code)] = constants.VirtualButton(vb)
	}
	for code, vb := range serializable.JoystickButtonMap {
		mapping.JoystickButtonMap[uint8(code)] = constants.VirtualButton(vb)
	}
	for code, vb := range serializable.JoystickHatMap {
		mapping.JoystickHatMap[uint8(code)] = constants.VirtualButton(vb)
	}

	return mapping, nil
}

func (im *InputMapping) ToJSON() ([]byte, error) {
	serializable := Mapping{
		KeyboardMap:         make(map[int]int, len(im.KeyboardMap)),
		ControllerButtonMap: make(map[int]int, len(im.ControllerButtonMap)),
		JoystickButtonMap:   make(map[int]int, len(im.JoystickButtonMap)),
		JoystickHatMap:      make(map[int]int, len(im.JoystickHatMap)),
	}

	for code, vb := range im.KeyboardMap {
		serializable.KeyboardMap[int(code)] = int(vb)
	}
	for code, vb := range im.ControllerButtonMap {
		serializable.ControllerButtonMap[int(code)] = int(vb)
	}
	for code, vb := range im.JoystickButtonMap {
		serializable.JoystickButtonMap[int(code)] = int(vb)
	}
	for code, vb := range im.JoystickHatMap {
		serializable.JoystickHatMap[int(code)] = int(vb)
	}

	return json.MarshalIndent(serializable, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
