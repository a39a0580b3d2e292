package world

import (
	"fmt"
	"strings"
)

// AddPlayer appends a player to the roster. Roster order is turn order.
func (w *World) AddPlayer(name, space string, kind PlayerKind) error {
	if name == "" {
		return validationErr("EMPTY_NAME", "player name cannot be empty")
	}
	if w.gameOver {
		return stateErr("GAME_OVER", "the game is over")
	}
	for _, p := range w.players {
		if p.name == name {
			return validationErr("DUPLICATE_PLAYER", "a player named %q already exists", name)
		}
	}
	if w.maxPlayers > 0 && len(w.players) >= w.maxPlayers {
		return stateErr("TOO_MANY_PLAYERS", "the game is limited to %d players", w.maxPlayers)
	}
	idx, err := w.spaceIndex(space)
	if err != nil {
		return err
	}

	w.players = append(w.players, newPlayer(name, idx, kind))
	w.logger.Info("player joined", "name", name, "space", space, "kind", kind)
	return nil
}

// MovePlayer moves the current player into the named space, which must be
// the space the player stands in or one of its neighbours.
func (w *World) MovePlayer(space string) (string, error) {
	p, err := w.current()
	if err != nil {
		return "", err
	}
	idx, err := w.spaceIndex(space)
	if err != nil {
		return "", err
	}
	if idx != p.space && !w.isNeighbor(p.space, idx) {
		return "", stateErr("NOT_ADJACENT", "%s is not a neighbour of %s", space, w.spaces[p.space].name)
	}

	p.space = idx
	w.advance(true)
	return fmt.Sprintf("The Player %s has moved to the space %s", p.name, space), nil
}

// PickItem moves the named item from the current player's space into
// their inventory.
func (w *World) PickItem(item string) (string, error) {
	if item == "" {
		return "", validationErr("EMPTY_NAME", "item name cannot be empty")
	}
	p, err := w.current()
	if err != nil {
		return "", err
	}
	sp := w.spaces[p.space]
	idx := -1
	for i, it := range sp.items {
		if it.Name == item {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", stateErr("ITEM_NOT_FOUND", "item %q is not in %s", item, sp.name)
	}
	if p.full() {
		return "", stateErr("INVENTORY_FULL", "player %s cannot carry more than %d items", p.name, MaxItems)
	}

	it, _ := sp.takeItem(item)
	if err := p.addItem(it); err != nil {
		return "", err
	}
	w.advance(true)
	return fmt.Sprintf("The Player %s has picked up the item %s from the space %s", p.name, item, sp.name), nil
}

// LookAround reports the current player's space and every neighbour that
// is not hidden by the pet.
func (w *World) LookAround() (string, error) {
	p, err := w.current()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Looking around...\nCurrent space:\n")
	sb.WriteString(w.spaceInfo(p.space))
	sb.WriteString("\n\nNeighbouring spaces:")
	for _, n := range w.neighbors(p.space, true) {
		sb.WriteString("\n")
		sb.WriteString(w.spaceInfo(n))
		sb.WriteString("\n")
	}

	w.advance(true)
	return strings.TrimRight(sb.String(), "\n"), nil
}

// MovePet places the pet in another space. The pet does not wander on
// this turn and its walk starts afresh from the new space.
func (w *World) MovePet(space string) (string, error) {
	if _, err := w.current(); err != nil {
		return "", err
	}
	idx, err := w.spaceIndex(space)
	if err != nil {
		return "", err
	}
	if idx == w.pet.space {
		return "", validationErr("PET_ALREADY_THERE", "pet %s is already in %s", w.pet.name, space)
	}

	w.pet.space = idx
	w.resetWander()
	w.advance(false)
	return fmt.Sprintf("Pet %s has been moved to the space %s", w.pet.name, space), nil
}

// Attack strikes the target with an inventory item or with Hand. The
// attacker must share the target's space. A witnessed attack does no
// damage. Items are used up either way; Hand never is. A killing blow
// ends the game without passing the turn.
func (w *World) Attack(item string) (string, error) {
	if item == "" {
		return "", validationErr("EMPTY_NAME", "item name cannot be empty")
	}
	p, err := w.current()
	if err != nil {
		return "", err
	}
	if p.space != w.target.space {
		return "", stateErr("NOT_WITH_TARGET", "%s is not in the same space as %s", p.name, w.target.name)
	}

	damage := HandDamage
	if item != Hand {
		it, ok := p.dropItem(item)
		if !ok {
			return "", validationErr("ITEM_NOT_HELD", "%s does not carry %q", p.name, item)
		}
		damage = it.Damage
	}

	suffix := ""
	if item != Hand {
		suffix = " Removing item..."
	}

	if seer, seen := w.seenBy(p); seen {
		w.logger.Debug("attack witnessed", "attacker", p.name, "witness", seer.name)
		w.advance(true)
		return "Attack failed! The attack was seen by another player." + suffix, nil
	}

	w.target.hit(damage)
	w.logger.Debug("target hit", "attacker", p.name, "item", item, "damage", damage, "health", w.target.health)

	if w.target.health <= 0 {
		w.gameOver = true
		w.winner = p.name
		w.logger.Info("target killed", "winner", p.name, "world", w.name)
		return fmt.Sprintf("Attack completed! The target is dead. Player %s has won the game!", p.name), nil
	}

	w.advance(true)
	return "Attack completed! The target's health has decreased." + suffix, nil
}
