package world

import "fmt"

// Hand is the pseudo-item every player can attack with. It is never held
// in an inventory and never consumed.
const Hand = "hand"

// HandDamage is the damage dealt by an attack with Hand.
const HandDamage = 1

// Item is an immutable named weapon. Items compare by value.
type Item struct {
	Name   string
	Damage int
}

// NewItem validates and creates an item.
func NewItem(name string, damage int) (Item, error) {
	if name == "" {
		return Item{}, validationErr("EMPTY_NAME", "name of the item cannot be empty")
	}
	if damage <= 0 {
		return Item{}, validationErr("BAD_DAMAGE", "damage of item %q must be positive, got %d", name, damage)
	}
	return Item{Name: name, Damage: damage}, nil
}

// String returns "Item(Name = Pan, Damage = 10)".
func (i Item) String() string {
	return fmt.Sprintf("Item(Name = %s, Damage = %d)", i.Name, i.Damage)
}

func itemNames(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

// removeItem deletes the first item with the given name.
func removeItem(items []Item, name string) ([]Item, Item, bool) {
	for i, it := range items {
		if it.Name == name {
			out := make([]Item, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, it, true
		}
	}
	return items, Item{}, false
}
