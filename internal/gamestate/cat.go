package gamestate

import (
	"maps"
	"strings"

	"github.com/vovakirdan/savekitty/internal/catalog"
)

// SetCatIdentity adopts a cat and ends the first-run setup. A blank name
// falls back to the configured default.
func (s *Store) SetCatIdentity(name string, skinID int) error {
	if _, ok := catalog.SkinByID(skinID); !ok {
		return ErrUnknownSkin
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.cfg.Cat.DefaultName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, gone := s.deceased.Get()[skinID]; gone {
		return ErrSkinRetired
	}
	s.catName.Set(name)
	save(s, s.keys.catName, name)
	s.catSkin.Set(skinID)
	save(s, s.keys.catSkin, skinID)
	s.setFirstRunLocked(false)
	return nil
}

// CompleteTutorial marks the tutorial as seen.
func (s *Store) CompleteTutorial() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tutorialDone.Get() {
		s.tutorialDone.Set(true)
		save(s, s.keys.tutorialDone, true)
	}
	s.setFirstRunLocked(false)
}

func (s *Store) setFirstRunLocked(v bool) {
	if s.firstRun.Get() == v {
		return
	}
	s.firstRun.Set(v)
	save(s, s.keys.firstRun, v)
}

// HandleGameOver retires the current cat. Its skin can never be adopted
// again; wallet, fish and food are emptied and health restored for the next
// cat. The room is kept.
func (s *Store) HandleGameOver() {
	s.mu.Lock()
	defer s.mu.Unlock()

	gone := CatIdentity{Name: s.catName.Get(), SkinID: s.catSkin.Get()}
	if gone.SkinID != NoSkin {
		dead := maps.Clone(s.deceased.Get())
		dead[gone.SkinID] = struct{}{}
		s.deceased.Set(dead)
		save(s, s.keys.deceased, dead)
	}

	respawn := s.cfg.Cat.RespawnHealth
	s.health.Set(respawn)
	save(s, s.keys.health, respawn)
	s.biscuits.Set(0)
	save(s, s.keys.biscuits, 0)
	s.fish.Set(0)
	save(s, s.keys.fish, 0)
	s.food.Set(map[string]int{})
	save(s, s.keys.food, map[string]int{})

	s.catName.Set("")
	save(s, s.keys.catName, "")
	s.catSkin.Set(NoSkin)
	save(s, s.keys.catSkin, NoSkin)
	s.setFirstRunLocked(true)

	s.logger.Info("cat passed away", "name", gone.Name, "skin", gone.SkinID)
	s.publishLocked(GameOver{SkinID: gone.SkinID, Name: gone.Name})
}
