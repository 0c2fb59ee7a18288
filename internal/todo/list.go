package todo

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Item is a single task on the list.
type Item struct {
	ID      string
	Text    string
	Done    bool
	Spent   time.Duration // time credited by the running clock
	Created time.Time
}

// List coordinates concurrent access to the tasks. The clock credits time to
// the selected task from its own goroutine while the UI edits the list.
type List struct {
	mu       sync.RWMutex
	items    []Item
	selected string
	now      func() time.Time
}

// NewList returns an empty list.
func NewList() *List {
	return &List{now: time.Now}
}

// Add prepends a task. Blank text is rejected.
func (l *List) Add(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now
	if l.now != nil {
		now = l.now
	}
	item := Item{ID: uuid.NewString(), Text: text, Created: now()}
	l.items = append([]Item{item}, l.items...)
	return item, true
}

// Edit replaces the text of an open task. Completed tasks are read-only.
func (l *List) Edit(id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 || l.items[i].Done {
		return false
	}
	l.items[i].Text = text
	return true
}

// Toggle flips the done flag.
func (l *List) Toggle(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.items[i].Done = !l.items[i].Done
	return true
}

// Remove deletes a task, clearing the selection if it pointed at it.
func (l *List) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	if l.selected == id {
		l.selected = ""
	}
	return true
}

// Select marks the task that receives clock credit.
func (l *List) Select(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexLocked(id) < 0 {
		return false
	}
	l.selected = id
	return true
}

// ClearSelection stops crediting any task.
func (l *List) ClearSelection() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selected = ""
}

// Selected returns the current selection.
func (l *List) Selected() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.selected, l.selected != ""
}

// Credit adds d to the task's spent time. Unknown ids are ignored.
func (l *List) Credit(id string, d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.indexLocked(id); i >= 0 {
		l.items[i].Spent += d
	}
}

// Get returns a copy of one task.
func (l *List) Get(id string) (Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexLocked(id)
	if i < 0 {
		return Item{}, false
	}
	return l.items[i], true
}

// Items returns a copy of all tasks, newest first.
func (l *List) Items() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneItems(l.items)
}

// Len returns the number of tasks.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *List) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
