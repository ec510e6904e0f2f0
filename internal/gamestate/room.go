package gamestate

import (
	"maps"

	"github.com/vovakirdan/savekitty/internal/catalog"
)

// BuyDecoration buys a decoration once. Owned decorations are never charged
// twice.
func (s *Store) BuyDecoration(item catalog.Decoration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.decor.Get()[item.ID] > 0 {
		return ErrAlreadyOwned
	}
	if !s.spendLocked(item.Price) {
		return ErrInsufficientFunds
	}
	inv := maps.Clone(s.decor.Get())
	inv[item.ID] = 1
	s.decor.Set(inv)
	save(s, s.keys.decor, inv)
	s.publishLocked(Purchased{ItemID: item.ID, Kind: KindDecoration, Price: item.Price})
	return nil
}

// EquipDecoration places an owned decoration in its slot, replacing whatever
// was there.
func (s *Store) EquipDecoration(item catalog.Decoration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.decor.Get()[item.ID] <= 0 {
		return ErrNotOwned
	}
	placed := maps.Clone(s.placed.Get())
	placed[item.Category] = item.ID
	s.placed.Set(placed)
	save(s, s.keys.placed, placed)
	return nil
}

// UnequipDecoration empties a slot. The decoration stays owned.
func (s *Store) UnequipDecoration(c catalog.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.placed.Get()[c]; !ok {
		return ErrSlotEmpty
	}
	placed := maps.Clone(s.placed.Get())
	delete(placed, c)
	s.placed.Set(placed)
	save(s, s.keys.placed, placed)
	return nil
}
