package systems

import (
	"github.com/automoto/poetry-duel/components"
	cfg "github.com/automoto/poetry-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the match's Intent.
// Must run BEFORE the duel step in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Intent.First(ecs.World)
	if !ok {
		return
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var intent components.IntentData
	if pressed(cfg.ActionMoveLeft) {
		intent.Steer--
	}
	if pressed(cfg.ActionMoveRight) {
		intent.Steer++
	}
	intent.Steer += analogSteer(gamepadIDs)
	if intent.Steer > 1 {
		intent.Steer = 1
	} else if intent.Steer < -1 {
		intent.Steer = -1
	}

	// Jumps fire once per press, like a key-down event.
	intent.Jump = justPressed(cfg.ActionJump)
	intent.Quit = justPressed(cfg.ActionQuit)

	components.Intent.SetValue(entry, intent)
}

func pressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func justPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// analogSteer reads the left stick of the first gamepad outside the deadzone.
func analogSteer(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone || h > deadzone {
			return h
		}
	}
	return 0
}
