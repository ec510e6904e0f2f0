package gamestate

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/config"
	"github.com/vovakirdan/savekitty/internal/storage"
)

// Stored key names. These are the on-disk layout and must not change.
const (
	keyBiscuits       = "biscuits"
	keyHealth         = "health"
	keyFish           = "fish"
	keyFoodInventory  = "food_inventory"
	keyDecorInventory = "decor_inventory"
	keyPlacedItems    = "placed_items"
	keyTodoList       = "todo_list"
	keyStudyHistory   = "study_history"
	keyCatName        = "cat_name"
	keyCatSkin        = "cat_skin"
	keyDeceasedCats   = "deceased_cats"
	keyFirstRun       = "is_first_run"
	keyTutorialDone   = "tutorial_done"
	keyLastHealthTime = "last_health_time"
	keyLastOpenDate   = "last_open_date"
	keyTimerTargetEnd = "timer_target_end"
	keyTimerRemaining = "timer_remaining"
	keyTimerDuration  = "timer_duration"
)

// schema is the typed view of every stored field. Defaults come from config
// so tuning a starting wallet does not touch the store.
type schema struct {
	biscuits       storage.Key[int]
	health         storage.Key[int]
	fish           storage.Key[int]
	food           storage.Key[map[string]int]
	decor          storage.Key[map[string]int]
	placed         storage.Key[map[catalog.Category]string]
	todos          storage.Key[[]TodoItem]
	history        storage.Key[[]StudySession]
	catName        storage.Key[string]
	catSkin        storage.Key[int]
	deceased       storage.Key[map[int]struct{}]
	firstRun       storage.Key[bool]
	tutorialDone   storage.Key[bool]
	lastHealthTime storage.Key[time.Time]
	lastOpenDate   storage.Key[time.Time]
	timerTargetEnd storage.Key[time.Time]
	timerRemaining storage.Key[int]
	timerDuration  storage.Key[int]
}

func newSchema(cfg config.Config) schema {
	timerSecs := int(cfg.Timer.DefaultDuration.Seconds())
	return schema{
		biscuits:       storage.IntKey(keyBiscuits, cfg.Economy.StartingBiscuits),
		health:         storage.IntKey(keyHealth, cfg.Cat.StartingHealth),
		fish:           storage.IntKey(keyFish, 0),
		food:           storage.JSONKey[map[string]int](keyFoodInventory),
		decor:          storage.JSONKey[map[string]int](keyDecorInventory),
		placed:         storage.JSONKey[map[catalog.Category]string](keyPlacedItems),
		todos:          storage.JSONKey[[]TodoItem](keyTodoList),
		history:        storage.JSONKey[[]StudySession](keyStudyHistory),
		catName:        storage.StringKey(keyCatName, cfg.Cat.DefaultName),
		catSkin:        storage.IntKey(keyCatSkin, 0),
		deceased:       setKey(keyDeceasedCats),
		firstRun:       storage.BoolKey(keyFirstRun, true),
		tutorialDone:   storage.BoolKey(keyTutorialDone, false),
		lastHealthTime: storage.InstantKey(keyLastHealthTime),
		lastOpenDate:   storage.InstantKey(keyLastOpenDate),
		timerTargetEnd: storage.InstantKey(keyTimerTargetEnd),
		timerRemaining: storage.IntKey(keyTimerRemaining, timerSecs),
		timerDuration:  storage.IntKey(keyTimerDuration, timerSecs),
	}
}

// setKey stores an int set as a sorted JSON array.
func setKey(name string) storage.Key[map[int]struct{}] {
	return storage.Key[map[int]struct{}]{
		Name: name,
		Codec: storage.Codec[map[int]struct{}]{
			Encode: func(set map[int]struct{}) (string, error) {
				ids := make([]int, 0, len(set))
				for id := range set {
					ids = append(ids, id)
				}
				sort.Ints(ids)
				b, err := json.Marshal(ids)
				return string(b), err
			},
			Decode: func(s string) (map[int]struct{}, error) {
				var ids []int
				if err := json.Unmarshal([]byte(s), &ids); err != nil {
					return nil, err
				}
				set := make(map[int]struct{}, len(ids))
				for _, id := range ids {
					set[id] = struct{}{}
				}
				return set, nil
			},
		},
	}
}
