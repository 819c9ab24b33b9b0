package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FeatureValue is either numeric or categorical.
type FeatureValue struct {
	Number      float64
	Text        string
	Categorical bool
}

func NumberValue(v float64) FeatureValue { return FeatureValue{Number: v} }

func TextValue(v string) FeatureValue { return FeatureValue{Text: v, Categorical: true} }

// Interface returns the value as float64 or string.
func (v FeatureValue) Interface() interface{} {
	if v.Categorical {
		return v.Text
	}
	return v.Number
}

func (v FeatureValue) String() string {
	if v.Categorical {
		return v.Text
	}
	return fmt.Sprintf("%v", v.Number)
}

// FeatureVector is the ordered, fixed-schema input of a prediction model.
// It is immutable once built.
type FeatureVector struct {
	keys   []string
	values map[string]FeatureValue
}

// FeatureVectorBuilder appends keys in the order the model expects.
type FeatureVectorBuilder struct {
	keys   []string
	values map[string]FeatureValue
}

func NewFeatureVectorBuilder(capacity int) *FeatureVectorBuilder {
	return &FeatureVectorBuilder{
		keys:   make([]string, 0, capacity),
		values: make(map[string]FeatureValue, capacity),
	}
}

// Set adds or replaces key. Replacing keeps the original position.
func (b *FeatureVectorBuilder) Set(key string, value FeatureValue) *FeatureVectorBuilder {
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	return b
}

func (b *FeatureVectorBuilder) Number(key string, v float64) *FeatureVectorBuilder {
	return b.Set(key, NumberValue(v))
}

func (b *FeatureVectorBuilder) Text(key, v string) *FeatureVectorBuilder {
	return b.Set(key, TextValue(v))
}

func (b *FeatureVectorBuilder) Flag(key string, on bool) *FeatureVectorBuilder {
	if on {
		return b.Number(key, 1)
	}
	return b.Number(key, 0)
}

// Build returns the vector. The builder must not be used afterwards.
func (b *FeatureVectorBuilder) Build() FeatureVector {
	fv := FeatureVector{keys: b.keys, values: b.values}
	b.keys, b.values = nil, nil
	return fv
}

// Keys returns a copy of the keys in model order.
func (f FeatureVector) Keys() []string {
	return append([]string(nil), f.keys...)
}

func (f FeatureVector) Len() int { return len(f.keys) }

func (f FeatureVector) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f FeatureVector) Value(key string) (FeatureValue, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Number returns the numeric value of key; false when missing or categorical.
func (f FeatureVector) Number(key string) (float64, bool) {
	v, ok := f.values[key]
	if !ok || v.Categorical {
		return 0, false
	}
	return v.Number, true
}

// Text returns the categorical value of key; false when missing or numeric.
func (f FeatureVector) Text(key string) (string, bool) {
	v, ok := f.values[key]
	if !ok || !v.Categorical {
		return "", false
	}
	return v.Text, true
}

// Equal reports whether both vectors have the same keys, order and values.
func (f FeatureVector) Equal(other FeatureVector) bool {
	if len(f.keys) != len(other.keys) {
		return false
	}
	for i, k := range f.keys {
		if other.keys[i] != k {
			return false
		}
		if f.values[k] != other.values[k] {
			return false
		}
	}
	return true
}

// Map returns a plain map copy, for callers that do not care about order.
func (f FeatureVector) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(f.keys))
	for _, k := range f.keys {
		out[k] = f.values[k].Interface()
	}
	return out
}

// MarshalJSON writes a JSON object preserving key order.
func (f FeatureVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.values[k].Interface())
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the key order of the document.
// Strings become categorical values and numbers numeric ones.
func (f *FeatureVector) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("feature vector must be a JSON object")
	}

	b := NewFeatureVectorBuilder(16)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case string:
			b.Text(key, v)
		case json.Number:
			n, err := v.Float64()
			if err != nil {
				return fmt.Errorf("feature %q: %w", key, err)
			}
			b.Number(key, n)
		default:
			return fmt.Errorf("feature %q: unsupported value %v", key, tok)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = b.Build()
	return nil
}
