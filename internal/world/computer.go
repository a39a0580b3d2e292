package world

import "fmt"

// Action is one of the moves a computer player draws from.
type Action int

const (
	ActionMove Action = iota + 1
	ActionPick
	ActionLook
	ActionMovePet
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionPick:
		return "pick"
	case ActionLook:
		return "look"
	case ActionMovePet:
		return "pet"
	default:
		return "unknown"
	}
}

// maxComputerDraws bounds the redraws spent on actions that cannot be
// played. After that the computer falls back to looking around.
const maxComputerDraws = 64

// ComputerAction plays the current turn for a computer player. A computer
// alone with the target attacks with its strongest item. Otherwise it
// draws one of the four actions, redrawing while the drawn action cannot
// be played.
func (w *World) ComputerAction() (string, error) {
	p, err := w.current()
	if err != nil {
		return "", err
	}
	if p.kind != Computer {
		return "", stateErr("HUMAN_TURN", "%s is a human player", p.name)
	}

	if p.space == w.target.space {
		if _, seen := w.seenBy(p); !seen {
			item := Hand
			if best, ok := p.strongest(); ok {
				item = best.Name
			}
			w.logger.Debug("computer attacks", "player", p.name, "item", item)
			return w.Attack(item)
		}
	}

	for draw := 0; draw < maxComputerDraws; draw++ {
		a := Action(p.ChooseAction(w.rng, 4) + 1)
		if !w.playable(p, a) {
			continue
		}
		w.logger.Debug("computer acts", "player", p.name, "action", a)
		return w.computerPlay(p, a)
	}

	w.logger.Debug("computer falls back", "player", p.name, "action", ActionLook)
	return w.computerPlay(p, ActionLook)
}

func (w *World) playable(p *Player, a Action) bool {
	switch a {
	case ActionMove:
		return len(w.neighbors(p.space, true)) > 0
	case ActionPick:
		return len(w.spaces[p.space].items) > 0 && !p.full()
	case ActionLook:
		return true
	case ActionMovePet:
		return len(w.spaces) > 1
	}
	return false
}

func (w *World) computerPlay(p *Player, a Action) (string, error) {
	switch a {
	case ActionMove:
		n := w.neighbors(p.space, true)
		dest := n[p.ChooseAction(w.rng, len(n))]
		return w.MovePlayer(w.spaces[dest].name)

	case ActionPick:
		items := w.spaces[p.space].items
		return w.PickItem(items[p.ChooseAction(w.rng, len(items))].Name)

	case ActionMovePet:
		return w.MovePet(w.spaces[w.petDestination(p)].name)
	}

	if _, err := w.LookAround(); err != nil {
		return "", err
	}
	return fmt.Sprintf("The Player %s is looking around...", p.name), nil
}

// petDestination draws a space other than the pet's own.
func (w *World) petDestination(p *Player) int {
	for draw := 0; draw < maxComputerDraws; draw++ {
		idx := p.ChooseAction(w.rng, len(w.spaces))
		if idx != w.pet.space {
			return idx
		}
	}
	if w.pet.space == 0 {
		return 1
	}
	return 0
}
