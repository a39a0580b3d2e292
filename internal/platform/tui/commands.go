package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pursuit/internal/world"
)

// Verb names a prompt command.
type Verb string

const (
	VerbMove   Verb = "move"
	VerbPick   Verb = "pick"
	VerbLook   Verb = "look"
	VerbPet    Verb = "pet"
	VerbAttack Verb = "attack"
	VerbInfo   Verb = "info"
	VerbSpace  Verb = "space"
	VerbHelp   Verb = "help"
	VerbQuit   Verb = "quit"
)

// ErrEmptyCommand is returned for a blank prompt line.
var ErrEmptyCommand = errors.New("empty command")

// Command is one parsed prompt line.
type Command struct {
	Verb Verb
	Arg  string // Space, item or player name; may contain spaces
}

// TakesTurn reports whether the command is a player action that ends the
// current turn.
func (c Command) TakesTurn() bool {
	switch c.Verb {
	case VerbMove, VerbPick, VerbLook, VerbPet, VerbAttack:
		return true
	}
	return false
}

var aliases = map[string]Verb{
	"go":    VerbMove,
	"m":     VerbMove,
	"take":  VerbPick,
	"l":     VerbLook,
	"a":     VerbAttack,
	"i":     VerbInfo,
	"s":     VerbSpace,
	"?":     VerbHelp,
	"h":     VerbHelp,
	"q":     VerbQuit,
	"exit":  VerbQuit,
	"where": VerbSpace,
}

// needsArg lists verbs that refuse an empty argument.
var needsArg = map[Verb]string{
	VerbMove:  "space",
	VerbPick:  "item",
	VerbPet:   "space",
	VerbInfo:  "player",
	VerbSpace: "space",
}

// ParseCommand splits a prompt line into a verb and its argument. The
// verb is case-insensitive; the argument keeps its case and inner spaces
// so that names like "Dining Hall" pass through. A bare "attack" uses the
// hand.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	head, rest, _ := strings.Cut(line, " ")
	word := strings.ToLower(head)
	arg := strings.Join(strings.Fields(rest), " ")

	verb := Verb(word)
	if v, ok := aliases[word]; ok {
		verb = v
	}

	switch verb {
	case VerbMove, VerbPick, VerbPet, VerbInfo, VerbSpace:
		if arg == "" {
			return Command{}, fmt.Errorf("%s needs a %s name", verb, needsArg[verb])
		}
	case VerbAttack:
		if arg == "" {
			arg = world.Hand
		}
	case VerbLook, VerbHelp, VerbQuit:
		if arg != "" {
			return Command{}, fmt.Errorf("%s takes no argument", verb)
		}
	default:
		return Command{}, fmt.Errorf("unknown command %q, type help for a list", head)
	}

	return Command{Verb: verb, Arg: arg}, nil
}

// commandHelp is shown by the help command.
const commandHelp = `Commands:
  move <space>     move to a neighbouring space (or stay put)
  pick <item>      pick up an item from your space
  look             look around your space and its neighbours
  pet <space>      move the pet to any space
  attack [item]    attack the target, bare-handed without an item
  info <player>    describe a player (free)
  space <name>     describe a space (free)
  help             show this list
  quit             leave the game
Click a space on the map to move there.`
