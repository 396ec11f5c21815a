package flip

import (
	"reflect"
	"strings"
	"sync"
)

// DefaultIDKey is the item field that identifies an item unless configured
// otherwise.
const DefaultIDKey = "id"

var (
	idKeyMu sync.RWMutex
	idKey   = DefaultIDKey
)

// SetDefaultIDKey overrides the item field used as the identity key by every
// zone attached afterwards. It is process-wide initialisation state: call it
// once at startup, before any zone exists. Zones already attached keep the
// key they resolved at Attach. Config.IDKey overrides it per zone.
func SetDefaultIDKey(key string) {
	if key == "" {
		key = DefaultIDKey
	}
	idKeyMu.Lock()
	defer idKeyMu.Unlock()
	idKey = key
}

// DefaultIDKeyName returns the process-wide identity key field name.
func DefaultIDKeyName() string {
	idKeyMu.RLock()
	defer idKeyMu.RUnlock()
	return idKey
}

// Identifier is implemented by items that know their own identity key,
// bypassing field lookup.
type Identifier interface {
	DndID() any
}

// ItemID extracts the identity key of item using the field named key.
//
// Lookup order: the Identifier interface; a map keyed by strings; an exported
// struct field tagged `dnd:"<key>"`; an exported struct field whose name
// matches key case-insensitively. Pointers are followed. A miss yields nil.
func ItemID(item any, key string) any {
	if id, ok := item.(Identifier); ok {
		return id.DndID()
	}
	if m, ok := item.(map[string]any); ok {
		return m[key]
	}

	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		got := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !got.IsValid() {
			return nil
		}
		return got.Interface()
	case reflect.Struct:
		return structField(v, key)
	}
	return nil
}

func structField(v reflect.Value, key string) any {
	t := v.Type()
	byName := -1
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup("dnd"); ok && strings.Split(tag, ",")[0] == key {
			return v.Field(i).Interface()
		}
		if byName < 0 && strings.EqualFold(f.Name, key) {
			byName = i
		}
	}
	if byName < 0 {
		return nil
	}
	return v.Field(byName).Interface()
}

// ItemIDs extracts the identity key of every item, preserving order.
func ItemIDs(items []any, key string) []any {
	ids := make([]any, len(items))
	for i, item := range items {
		ids[i] = ItemID(item, key)
	}
	return ids
}
