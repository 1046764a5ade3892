package components

import "github.com/yohamta/donburi"

// DialogueData is the singleton intro-dialogue state. While a dialogue is
// open the session sits in the Dialogue state: AI and input-driven movement
// are skipped, animation and gravity keep running.
type DialogueData struct {
	Active bool
	Seen   bool // the trigger fires once per run
	Line   int
}

var Dialogue = donburi.NewComponentType[DialogueData]()
