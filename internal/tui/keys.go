package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/tablekeep/internal/config"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps keys to actions per scope. Lookups fall back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal        = "global"
	scopeContactsForm  = "contacts_form"
	scopeContactsTable = "contacts_table"
	scopeTasksForm     = "tasks_form"
	scopeTasksStatus   = "tasks_status"
	scopeTasksTable    = "tasks_table"
	scopeConfirm       = "confirm"
	scopeTaskEditor    = "task_editor"
)

const (
	actionQuit      Action = "quit"
	actionNextFocus Action = "next_focus"
	actionPrevFocus Action = "prev_focus"
	actionUp        Action = "up"
	actionDown      Action = "down"
	actionAdd       Action = "add"
	actionRemove    Action = "remove"
	actionEdit      Action = "edit"
	actionNext      Action = "next"
	actionPrev      Action = "prev"
	actionYes       Action = "yes"
	actionNo        Action = "no"
	actionToggle    Action = "toggle"
	actionSelect    Action = "select"
	actionSave      Action = "save"
	actionCancel    Action = "cancel"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")
	reg(scopeGlobal, actionNextFocus, []string{"tab"}, "next field")
	reg(scopeGlobal, actionPrevFocus, []string{"shift+tab"}, "prev field")

	// Text inputs own printable keys, so form scopes bind control keys only.
	reg(scopeContactsForm, actionAdd, []string{"enter"}, "add contact")
	reg(scopeContactsForm, actionRemove, []string{"ctrl+d"}, "remove contact")

	reg(scopeContactsTable, actionUp, []string{"k", "up"}, "up")
	reg(scopeContactsTable, actionDown, []string{"j", "down"}, "down")
	reg(scopeContactsTable, actionRemove, []string{"d", "delete", "ctrl+d"}, "remove contact")
	reg(scopeContactsTable, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeTasksForm, actionAdd, []string{"enter"}, "add task")

	reg(scopeTasksStatus, actionPrev, []string{"h", "left"}, "prev status")
	reg(scopeTasksStatus, actionNext, []string{"l", "right"}, "next status")
	reg(scopeTasksStatus, actionAdd, []string{"enter"}, "add task")

	reg(scopeTasksTable, actionUp, []string{"k", "up"}, "up")
	reg(scopeTasksTable, actionDown, []string{"j", "down"}, "down")
	reg(scopeTasksTable, actionEdit, []string{"enter", "e"}, "edit status")
	reg(scopeTasksTable, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeConfirm, actionYes, []string{"y"}, "yes")
	reg(scopeConfirm, actionNo, []string{"n", "esc"}, "no")
	reg(scopeConfirm, actionToggle, []string{"h", "l", "left", "right", "tab"}, "switch")
	reg(scopeConfirm, actionSelect, []string{"enter"}, "choose")

	reg(scopeTaskEditor, actionUp, []string{"k", "up"}, "up")
	reg(scopeTaskEditor, actionDown, []string{"j", "down"}, "down")
	reg(scopeTaskEditor, actionSave, []string{"enter"}, "save")
	reg(scopeTaskEditor, actionCancel, []string{"esc"}, "cancel")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// ActionFor returns the action bound to keyName in scope, or "".
func (r *KeyRegistry) ActionFor(keyName, scope string) Action {
	if b := r.Lookup(keyName, scope); b != nil {
		return b.Action
	}
	return ""
}

func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// FooterBindings returns scope help followed by global bindings whose
// action the scope does not already cover.
func (r *KeyRegistry) FooterBindings(scope string) []key.Binding {
	out := r.HelpBindings(scope)
	if scope == scopeGlobal {
		return out
	}
	covered := make(map[Action]bool)
	for _, b := range r.BindingsForScope(scope) {
		covered[b.Action] = true
	}
	for _, b := range r.BindingsForScope(scopeGlobal) {
		if covered[b.Action] {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Keep single uppercase runes distinct from lowercase ones.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "escape", "esc")
	return s
}

// ApplyKeybindingConfig replaces the keys of existing (scope, action)
// bindings and rejects unknown targets, duplicates and conflicts. The
// registry is left untouched when any override is rejected.
func (r *KeyRegistry) ApplyKeybindingConfig(items []config.Keybinding) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	pending := make(map[*Binding][]string)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding scope=%q action=%q: duplicated entry", scope, action)
		}
		seenPair[p] = true
		pending[target] = keys
	}

	keysOf := func(b *Binding) []string {
		if keys, ok := pending[b]; ok {
			return keys
		}
		return b.Keys
	}
	scopes := make([]string, 0, len(r.bindingsByScope))
	for scope := range r.bindingsByScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	for _, scope := range scopes {
		seen := make(map[string]Action)
		for _, b := range r.bindingsByScope[scope] {
			for _, k := range keysOf(b) {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}

	for b, keys := range pending {
		b.Keys = keys
	}
	r.rebuildIndex()
	return nil
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
