package bson

// Element is a single key/value pair within a Document, preserving the
// order in which it was appended.
type Element struct {
	Key   string
	Value Value
}

// Document is an ordered string-keyed mapping of BSON values. Unlike a Go
// map, it preserves insertion order, which BSON documents are defined to
// preserve on the wire.
type Document struct {
	elements []Element
	index    map[string]int
}

// NewDocument returns an empty Document, optionally pre-populated with
// the given key/value pairs in the order given.
func NewDocument(elems ...Element) *Document {
	d := &Document{index: make(map[string]int, len(elems))}
	for _, e := range elems {
		d.Append(e.Key, e.Value)
	}
	return d
}

// Append adds key/value to the end of the document. If key already
// exists, its value is replaced in place and its position is unchanged.
func (d *Document) Append(key string, value Value) *Document {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[key]; ok {
		d.elements[i].Value = value
		return d
	}
	d.index[key] = len(d.elements)
	d.elements = append(d.elements, Element{Key: key, Value: value})
	return d
}

// Lookup returns the value for key and whether it was present.
func (d *Document) Lookup(key string) (Value, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.elements[i].Value, true
}

// Delete removes key from the document, if present.
func (d *Document) Delete(key string) *Document {
	i, ok := d.index[key]
	if !ok {
		return d
	}
	d.elements = append(d.elements[:i], d.elements[i+1:]...)
	delete(d.index, key)
	for k, v := range d.index {
		if v > i {
			d.index[k] = v - 1
		}
	}
	return d
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	return len(d.elements)
}

// Elements returns the document's elements in insertion order.
func (d *Document) Elements() []Element {
	return d.elements
}

// Keys returns the document's keys in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.elements))
	for i, e := range d.elements {
		keys[i] = e.Key
	}
	return keys
}

// encodeOrder returns the document's elements in the order the encoder
// writes them: if an "_id" key is present at the top level, it is moved
// to the front without mutating the document itself. Nested documents
// are never reordered this way; only encodeTopLevelDocument uses it.
func (d *Document) encodeOrder() []Element {
	idIdx, hasID := d.index["_id"]
	if !hasID || idIdx == 0 {
		return d.elements
	}
	ordered := make([]Element, 0, len(d.elements))
	ordered = append(ordered, d.elements[idIdx])
	for i, e := range d.elements {
		if i == idIdx {
			continue
		}
		ordered = append(ordered, e)
	}
	return ordered
}
