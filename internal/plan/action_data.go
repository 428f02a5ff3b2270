// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"encoding/json"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ActionDataVersion versions the key vocabulary below.
const ActionDataVersion = "1"

const (
	KeyOperationInputs    = "operationInputs"
	KeyActionPayload      = "actionPayload"
	KeyExecutableOutputs  = "executableOutputs"
	KeyExecutableResults  = "executableResults"
	KeyNavigation         = "navigation"
	KeyNextStepID         = "nextStepId"
	KeyLoop               = "loop"
	KeyTaskArguments      = "taskArguments"
	KeySubflowID          = "subflowId"
	KeySubflowEntryStepID = "subflowEntryStepId"
)

// Keys lists the vocabulary.
var Keys = []string{
	KeyOperationInputs,
	KeyActionPayload,
	KeyExecutableOutputs,
	KeyExecutableResults,
	KeyNavigation,
	KeyNextStepID,
	KeyLoop,
	KeyTaskArguments,
	KeySubflowID,
	KeySubflowEntryStepID,
}

// ActionData is the insertion-ordered payload of a step.
type ActionData struct {
	entries *orderedmap.OrderedMap[string, any]
}

func NewActionData() *ActionData {
	return &ActionData{entries: orderedmap.New[string, any]()}
}

// Set stores value under key. An existing key keeps its position.
func (d *ActionData) Set(key string, value any) {
	d.entries.Set(key, value)
}

func (d *ActionData) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return d.entries.Get(key)
}

// Keys returns the keys in insertion order.
func (d *ActionData) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, d.entries.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (d *ActionData) Len() int {
	if d == nil {
		return 0
	}
	return d.entries.Len()
}

// Equal reports whether both hold deeply equal values under the same keys in
// the same order. go-cmp picks it up when comparing plans.
func (d *ActionData) Equal(other *ActionData) bool {
	if d.Len() != other.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	a, b := d.entries.Oldest(), other.entries.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !reflect.DeepEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

func (d *ActionData) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.entries)
}

func (d *ActionData) MarshalYAML() (interface{}, error) {
	if d == nil {
		return map[string]any{}, nil
	}
	return d.entries, nil
}

// get returns the value under key when it has type T.
func get[T any](d *ActionData, key string) (T, bool) {
	var zero T
	v, ok := d.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
