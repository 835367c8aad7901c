package protocol

import "fmt"

// Cmd identifies something the engine wants the presentation layer to
// narrate
type Cmd int

const (
	Null Cmd = iota
	GameStarted
	CardPlayed
	CardDrawn
	TurnChanged
	DeckExhausted
	SuitPicking
	SuitChosen
	GameOver
	Error
)

var cmdNames = []string{
	"Null",
	"GameStarted",
	"CardPlayed",
	"CardDrawn",
	"TurnChanged",
	"DeckExhausted",
	"SuitPicking",
	"SuitChosen",
	"GameOver",
	"Error",
}

func (c Cmd) String() string {
	if c < Null || int(c) >= len(cmdNames) {
		return ""
	}
	return cmdNames[c]
}

// MarshalText makes Cmd readable on the wire
func (c Cmd) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText reverses MarshalText
func (c *Cmd) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range cmdNames {
		if n == name {
			*c = Cmd(i)
			return nil
		}
	}
	return fmt.Errorf("unknown command %q", name)
}

// Intent command names, as sent by the presentation layer.
const (
	IntentPlay       = "play"
	IntentDraw       = "draw"
	IntentChooseSuit = "chooseSuit"
	IntentPass       = "pass"
	IntentRestart    = "restart"
)
