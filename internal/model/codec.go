package model

import (
	"encoding/json"
	"fmt"
)

// Tasks and groups persist as one JSON string per record inside a string
// array settings key. Encode never fails for these shapes; Decode returns
// explicit errors so defensive callers can skip bad entries.

func EncodeTask(t Task) string {
	raw, err := json.Marshal(t)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func DecodeTask(raw string) (Task, error) {
	var t Task
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Task{}, fmt.Errorf("model: decode task: %w", err)
	}
	return t, nil
}

func EncodeGroup(g Group) string {
	raw, err := json.Marshal(g)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func DecodeGroup(raw string) (Group, error) {
	var g Group
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return Group{}, fmt.Errorf("model: decode group: %w", err)
	}
	return g, nil
}

// DecodeTasks parses every entry it can and reports how many it skipped.
func DecodeTasks(raw []string) ([]Task, int) {
	out := make([]Task, 0, len(raw))
	skipped := 0
	for _, entry := range raw {
		t, err := DecodeTask(entry)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, t)
	}
	return out, skipped
}

func DecodeGroups(raw []string) ([]Group, int) {
	out := make([]Group, 0, len(raw))
	skipped := 0
	for _, entry := range raw {
		g, err := DecodeGroup(entry)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, g)
	}
	return out, skipped
}

func EncodeTasks(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, EncodeTask(t))
	}
	return out
}

func EncodeGroups(groups []Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, EncodeGroup(g))
	}
	return out
}
