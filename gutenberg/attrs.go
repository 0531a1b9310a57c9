package gutenberg

import (
	"bytes"
)

// Attr is one key/value entry of an attribute set.
type Attr struct {
	Key   string
	Value Value
}

// Attrs is an insertion-ordered attribute mapping. Block comments serialize
// keys in the order they were first set.
type Attrs struct {
	items []Attr
	index map[string]int
}

// NewAttrs returns an empty attribute set.
func NewAttrs() *Attrs {
	return &Attrs{}
}

// Len returns the number of attributes; a nil set is empty.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Set stores value under key. An existing key keeps its position.
func (a *Attrs) Set(key string, value Value) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if pos, ok := a.index[key]; ok {
		a.items[pos].Value = value
		return
	}
	a.index[key] = len(a.items)
	a.items = append(a.items, Attr{Key: key, Value: value})
}

func (a *Attrs) Get(key string) (Value, bool) {
	if a == nil || a.index == nil {
		return Value{}, false
	}
	pos, ok := a.index[key]
	if !ok {
		return Value{}, false
	}
	return a.items[pos].Value, true
}

func (a *Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

func (a *Attrs) Delete(key string) {
	if a == nil || a.index == nil {
		return
	}
	pos, ok := a.index[key]
	if !ok {
		return
	}
	a.items = append(a.items[:pos], a.items[pos+1:]...)
	delete(a.index, key)
	for i := pos; i < len(a.items); i++ {
		a.index[a.items[i].Key] = i
	}
}

// Keys returns attribute keys in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.items))
	for i, item := range a.items {
		keys[i] = item.Key
	}
	return keys
}

func (a *Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *Attrs) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, a.items[i].Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := a.items[i].Value.writeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}
