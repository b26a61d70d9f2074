package components

import "github.com/yohamta/donburi"

// IntentData is one tick of player intent, independent of the input device.
type IntentData struct {
	Steer float64 // -1 left, +1 right, 0 none
	Jump  bool
	Quit  bool
}

var Intent = donburi.NewComponentType[IntentData]()
