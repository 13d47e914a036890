package main

import (
	"fmt"
	"sync"

	"github.com/eiannone/keyboard"
)

// ToggleInput polls the keyboard for the settings toggle keys in a
// background goroutine, for §6's CLI/input surface. Toggles are applied to
// Settings as soon as a key is read, which can be in the middle of a frame;
// they are not deferred to frame boundaries. Grounded on
// SilentInputManager in win_input.go, trimmed from a continuous
// WASD/camera-movement reader down to the discrete toggle keys this
// pipeline actually exposes: f=filter mode, r=render mode, c=cull mode,
// t=transparency, p=FPS print, x/Esc=quit.
type ToggleInput struct {
	settings *Settings

	mutex    sync.Mutex
	running  bool
	stopChan chan struct{}
	printFPS bool
	quit     bool
}

func NewToggleInput(settings *Settings) *ToggleInput {
	return &ToggleInput{
		settings: settings,
		stopChan: make(chan struct{}),
	}
}

// Start opens the keyboard and begins applying toggles in a background
// goroutine. It never blocks a render frame: frames read the accumulated
// state through ConsumeFPSPrintRequest/ShouldQuit rather than waiting on input.
func (t *ToggleInput) Start() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.running {
		return nil
	}
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	t.running = true

	go t.run()
	return nil
}

func (t *ToggleInput) run() {
	for {
		select {
		case <-t.stopChan:
			return
		default:
		}

		char, key, err := keyboard.GetKey()
		if err != nil {
			continue
		}

		switch key {
		case keyboard.KeyEsc:
			t.mutex.Lock()
			t.quit = true
			t.mutex.Unlock()
			continue
		}

		switch char {
		case 'f', 'F':
			t.settings.ToggleFilterMode()
		case 'r', 'R':
			t.settings.ToggleRenderMode()
		case 'c', 'C':
			t.settings.ToggleCullMode()
		case 't', 'T':
			t.settings.ToggleTransparency()
		case 'p', 'P':
			t.mutex.Lock()
			t.printFPS = true
			t.mutex.Unlock()
		case 'x', 'X':
			t.mutex.Lock()
			t.quit = true
			t.mutex.Unlock()
		}
	}
}

// Stop closes the keyboard and terminates the polling goroutine.
func (t *ToggleInput) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if !t.running {
		return
	}
	t.running = false
	close(t.stopChan)
	keyboard.Close()
}

// ConsumeFPSPrintRequest reports whether 'p' was pressed since the last
// call, clearing the flag so each press prints exactly one report.
func (t *ToggleInput) ConsumeFPSPrintRequest() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	requested := t.printFPS
	t.printFPS = false
	return requested
}

// ShouldQuit reports whether the host's frame loop should exit.
func (t *ToggleInput) ShouldQuit() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.quit
}
