package gamestate

import (
	"slices"
	"strings"
)

// AddTodo appends a todo. Ids are wall-clock milliseconds, bumped so they
// stay unique within the list.
func (s *Store) AddTodo(text string, daily bool) (TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TodoItem{}, ErrBlankText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.lastTodoID
	for _, t := range s.todos.Get() {
		last = max(last, t.ID)
	}
	id := max(s.clock.Now().UnixMilli(), last+1)
	s.lastTodoID = id

	item := TodoItem{ID: id, Text: text, Daily: daily}
	list := append(slices.Clone(s.todos.Get()), item)
	s.setTodosLocked(list)
	return item, nil
}

// ToggleTodo flips the done flag of one todo.
func (s *Store) ToggleTodo(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.todos.Get()
	i := indexTodo(cur, id)
	if i < 0 {
		return ErrTodoNotFound
	}
	list := slices.Clone(cur)
	list[i].Done = !list[i].Done
	s.setTodosLocked(list)
	return nil
}

// DeleteTodo removes one todo.
func (s *Store) DeleteTodo(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.todos.Get()
	i := indexTodo(cur, id)
	if i < 0 {
		return ErrTodoNotFound
	}
	list := slices.Delete(slices.Clone(cur), i, i+1)
	s.setTodosLocked(list)
	return nil
}

func (s *Store) setTodosLocked(list []TodoItem) {
	s.todos.Set(list)
	save(s, s.keys.todos, list)
}

func indexTodo(list []TodoItem, id int64) int {
	return slices.IndexFunc(list, func(t TodoItem) bool { return t.ID == id })
}
