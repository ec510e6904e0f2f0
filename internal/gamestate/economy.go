package gamestate

import (
	"maps"

	"github.com/vovakirdan/savekitty/internal/catalog"
)

// Earn adds amount biscuits to the wallet.
func (s *Store) Earn(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.earnLocked(amount)
	return nil
}

// Spend removes amount biscuits if the wallet covers it. It reports false and
// changes nothing otherwise.
func (s *Store) Spend(amount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spendLocked(amount)
}

func (s *Store) earnLocked(amount int) {
	v := s.biscuits.Get() + amount
	s.biscuits.Set(v)
	save(s, s.keys.biscuits, v)
}

func (s *Store) spendLocked(amount int) bool {
	cur := s.biscuits.Get()
	if amount <= 0 || amount > cur {
		return false
	}
	s.biscuits.Set(cur - amount)
	save(s, s.keys.biscuits, cur-amount)
	return true
}

// BuyFish buys one fish at the configured price.
func (s *Store) BuyFish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buyFishLocked()
}

func (s *Store) buyFishLocked() error {
	price := s.cfg.Economy.FishPrice
	if !s.spendLocked(price) {
		return ErrInsufficientFunds
	}
	n := s.fish.Get() + 1
	s.fish.Set(n)
	save(s, s.keys.fish, n)
	s.publishLocked(Purchased{ItemID: catalog.FishID, Kind: KindFish, Price: price})
	return nil
}

// BuyFood buys one unit of food into the inventory. Fish always goes to the
// fish stock.
func (s *Store) BuyFood(food catalog.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if food.ID == catalog.FishID {
		return s.buyFishLocked()
	}

	if !s.spendLocked(food.Price) {
		return ErrInsufficientFunds
	}
	inv := maps.Clone(s.food.Get())
	inv[food.ID]++
	s.food.Set(inv)
	save(s, s.keys.food, inv)
	s.publishLocked(Purchased{ItemID: food.ID, Kind: KindFood, Price: food.Price})
	return nil
}

// EatFish feeds the cat one fish. Fish left in the food inventory by older
// saves is eaten once the fish stock is empty.
func (s *Store) EatFish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eatFishLocked()
}

func (s *Store) eatFishLocked() error {
	n := s.fish.Get()
	pantry := s.food.Get()[catalog.FishID]
	if n <= 0 && pantry <= 0 {
		return ErrOutOfStock
	}
	if s.health.Get() >= s.cfg.Cat.MaxHealth {
		return ErrHealthFull
	}
	if n > 0 {
		s.fish.Set(n - 1)
		save(s, s.keys.fish, n-1)
	} else {
		s.takeFoodLocked(catalog.FishID)
	}
	h := s.healLocked(s.cfg.Cat.FishHeal)
	s.publishLocked(Fed{ItemID: catalog.FishID, Health: h})
	return nil
}

// EatFood feeds the cat one unit of food from the inventory.
func (s *Store) EatFood(food catalog.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if food.ID == catalog.FishID {
		return s.eatFishLocked()
	}
	if s.food.Get()[food.ID] <= 0 {
		return ErrOutOfStock
	}
	if s.health.Get() >= s.cfg.Cat.MaxHealth {
		return ErrHealthFull
	}
	s.takeFoodLocked(food.ID)
	h := s.healLocked(food.HealthPoints)
	s.publishLocked(Fed{ItemID: food.ID, Health: h})
	return nil
}

func (s *Store) takeFoodLocked(id string) {
	inv := maps.Clone(s.food.Get())
	if inv[id]--; inv[id] <= 0 {
		delete(inv, id)
	}
	s.food.Set(inv)
	save(s, s.keys.food, inv)
}

func (s *Store) healLocked(points int) int {
	h := min(s.health.Get()+points, s.cfg.Cat.MaxHealth)
	s.health.Set(h)
	save(s, s.keys.health, h)
	return h
}

// TapCat pets the cat for a small reward and reports the mood it was in.
func (s *Store) TapCat() (Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mood := MoodFor(s.health.Get(), s.timer.Get().Running(), s.cfg.Cat.HungryThreshold)
	if r := s.cfg.Economy.TapReward; r > 0 {
		s.earnLocked(r)
	}
	return mood, nil
}
