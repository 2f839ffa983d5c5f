// Package visibility manages the set of transactions the user has
// excluded from budget and category math without deleting them.
//
// The set is persisted as a preference, not a database row: hiding is a
// cosmetic, reversible flag. A corrupt persisted payload is swallowed
// and treated as an empty set.
package visibility

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
)

// Toggle returns a copy of the set with id's membership flipped. Pure:
// the input set is untouched.
func Toggle(set core.IDSet, id string) core.IDSet {
	out := set.Clone()
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// Manager loads and saves the hidden set and broadcasts changes to
// in-process subscribers so dependent views recompute without a full
// refetch. The broadcast is synchronous and never leaves the process.
type Manager struct {
	prefs store.PreferenceStore

	mu          sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

func NewManager(prefs store.PreferenceStore) *Manager {
	return &Manager{
		prefs:       prefs,
		subscribers: make(map[int]func()),
	}
}

// Load reads the persisted hidden set. Absent or corrupt payloads yield
// an empty set; the error is logged, never propagated.
func (m *Manager) Load() core.IDSet {
	raw, ok, err := m.prefs.Get(store.PrefKeyHidden)
	if err != nil || !ok {
		if err != nil {
			slog.Warn("Failed to read hidden set, using empty", "error", err)
		}
		return core.IDSet{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		slog.Warn("Hidden set payload corrupt, using empty", "error", err)
		return core.IDSet{}
	}

	set := make(core.IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Save replaces the persisted set wholly and notifies subscribers.
func (m *Manager) Save(set core.IDSet) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := m.prefs.Set(store.PrefKeyHidden, string(raw)); err != nil {
		return err
	}

	m.notify()
	return nil
}

// ToggleAndSave flips one id and persists the result, returning the new
// set.
func (m *Manager) ToggleAndSave(id string) (core.IDSet, error) {
	set := Toggle(m.Load(), id)
	if err := m.Save(set); err != nil {
		return nil, err
	}
	return set, nil
}

// Subscribe registers fn to run synchronously after every successful
// Save. The returned function removes the subscription.
func (m *Manager) Subscribe(fn func()) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

func (m *Manager) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
