package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

type PowerButtonConfig struct {
	ButtonCode      evdev.EvCode
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendScript   string
	ShutdownCommand string
}

func (pbc PowerButtonConfig) enabled() bool {
	return pbc.DevicePath != "" && pbc.ButtonCode != 0
}

type pressAction int

const (
	pressIgnored pressAction = iota
	pressSuspend
	pressShutdown
)

// classifyPress decides what a press of the given length does, honouring the cool down after the last action.
func classifyPress(held, sinceLastAction time.Duration, pbc PowerButtonConfig) pressAction {
	if sinceLastAction < pbc.CoolDownTime {
		return pressIgnored
	}
	if held <= pbc.ShortPressMax {
		return pressSuspend
	}
	return pressShutdown
}

// PowerButtonHandler watches the power key on an evdev device until the device is closed or fails.
// A short press runs the suspend script and a long press runs the shutdown command.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	defer wg.Done()

	logger := GetInternalLogger()

	dev, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		logger.Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}
	defer dev.Close()

	var pressedAt time.Time
	var lastAction time.Time

	for {
		event, err := dev.ReadOne()
		if err != nil {
			logger.Debug("Power button watcher stopped", "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() {
				continue
			}

			action := classifyPress(time.Since(pressedAt), time.Since(lastAction), pbc)
			pressedAt = time.Time{}

			switch action {
			case pressSuspend:
				lastAction = time.Now()
				runPowerCommand(pbc.SuspendScript)
			case pressShutdown:
				lastAction = time.Now()
				runPowerCommand(pbc.ShutdownCommand)
			}
		}
	}
}

func runPowerCommand(command string) {
	if command == "" {
		return
	}

	GetInternalLogger().Info("Running power command", "command", command)

	if err := exec.Command(command).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "command", command, "error", err)
	}
}
