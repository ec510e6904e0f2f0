package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrCorrupt marks a stored value that could not be decoded.
var ErrCorrupt = errors.New("storage: corrupt value")

// Codec converts a typed value to and from its stored string form.
type Codec[T any] struct {
	Encode func(T) (string, error)
	Decode func(string) (T, error)
}

// Key is a typed accessor for one stored field. A missing, empty or
// undecodable value always reads as Default.
type Key[T any] struct {
	Name    string
	Default T
	Codec   Codec[T]
}

// Read loads the key from kv. The returned error is informational: the value
// is always usable and falls back to Default.
func (k Key[T]) Read(ctx context.Context, kv KV) (T, error) {
	raw, ok, err := kv.Get(ctx, k.Name)
	if err != nil {
		return k.Default, err
	}
	if !ok {
		return k.Default, nil
	}
	return k.Decode(raw)
}

// Decode parses raw, falling back to Default.
func (k Key[T]) Decode(raw string) (T, error) {
	if raw == "" {
		return k.Default, nil
	}
	v, err := k.Codec.Decode(raw)
	if err != nil {
		return k.Default, fmt.Errorf("%w: key %q: %v", ErrCorrupt, k.Name, err)
	}
	return v, nil
}

// Encode renders v in stored form.
func (k Key[T]) Encode(v T) (string, error) {
	s, err := k.Codec.Encode(v)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode %q: %w", k.Name, err)
	}
	return s, nil
}

// IntKey declares an integer field.
func IntKey(name string, def int) Key[int] {
	return Key[int]{
		Name:    name,
		Default: def,
		Codec: Codec[int]{
			Encode: func(v int) (string, error) { return strconv.Itoa(v), nil },
			Decode: strconv.Atoi,
		},
	}
}

// BoolKey declares a boolean field.
func BoolKey(name string, def bool) Key[bool] {
	return Key[bool]{
		Name:    name,
		Default: def,
		Codec: Codec[bool]{
			Encode: func(v bool) (string, error) { return strconv.FormatBool(v), nil },
			Decode: strconv.ParseBool,
		},
	}
}

// StringKey declares a text field.
func StringKey(name, def string) Key[string] {
	return Key[string]{
		Name:    name,
		Default: def,
		Codec: Codec[string]{
			Encode: func(v string) (string, error) { return v, nil },
			Decode: func(s string) (string, error) { return s, nil },
		},
	}
}

// InstantKey declares a wall-clock instant stored as Unix milliseconds.
// 0 and the zero time are the same "never" sentinel.
func InstantKey(name string) Key[time.Time] {
	return Key[time.Time]{
		Name: name,
		Codec: Codec[time.Time]{
			Encode: func(v time.Time) (string, error) {
				if v.IsZero() {
					return "0", nil
				}
				return strconv.FormatInt(v.UnixMilli(), 10), nil
			},
			Decode: func(s string) (time.Time, error) {
				ms, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return time.Time{}, err
				}
				if ms == 0 {
					return time.Time{}, nil
				}
				return time.UnixMilli(ms), nil
			},
		},
	}
}

// JSONKey declares a structured document field (lists, maps, sets).
// "null" decodes to the zero value, which callers treat as empty.
func JSONKey[T any](name string) Key[T] {
	return Key[T]{
		Name: name,
		Codec: Codec[T]{
			Encode: func(v T) (string, error) {
				b, err := json.Marshal(v)
				return string(b), err
			},
			Decode: func(s string) (T, error) {
				var v T
				err := json.Unmarshal([]byte(s), &v)
				return v, err
			},
		},
	}
}
