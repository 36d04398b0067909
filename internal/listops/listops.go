// Package listops holds the pure transforms over task and group sequences.
// Functions never mutate their inputs; callers get fresh slices back.
package listops

import "paneltasks/internal/model"

// InsertPosition picks where a new task lands: index 1 when the first task
// is focused (the focused task keeps position 0), index 0 otherwise.
func InsertPosition(tasks []model.Task) int {
	if len(tasks) > 0 && tasks[0].IsFocused {
		return 1
	}
	return 0
}

func Insert(tasks []model.Task, task model.Task, pos int) []model.Task {
	if pos < 0 {
		pos = 0
	}
	if pos > len(tasks) {
		pos = len(tasks)
	}
	out := make([]model.Task, 0, len(tasks)+1)
	out = append(out, tasks[:pos]...)
	out = append(out, task)
	out = append(out, tasks[pos:]...)
	return out
}

// Remove splices out the element at index. Out-of-range indexes report
// false and return the input unchanged.
func Remove(tasks []model.Task, index int) ([]model.Task, bool) {
	if index < 0 || index >= len(tasks) {
		return tasks, false
	}
	out := make([]model.Task, 0, len(tasks)-1)
	out = append(out, tasks[:index]...)
	out = append(out, tasks[index+1:]...)
	return out, true
}

func Replace(tasks []model.Task, index int, task model.Task) []model.Task {
	if index < 0 || index >= len(tasks) {
		return tasks
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	out[index] = task
	return out
}

// SwapToFront relocates the element at index to position 0 and moves the
// former front element into index. A pure swap, not a general reorder.
func SwapToFront(tasks []model.Task, index int) []model.Task {
	if index <= 0 || index >= len(tasks) {
		return tasks
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	out[0], out[index] = out[index], out[0]
	return out
}

// MoveToEndOfGroup reinserts the task at index after the last later task
// sharing its effective group. Reports whether anything moved; calling it
// again on the moved task is a no-op.
func MoveToEndOfGroup(tasks []model.Task, index int) ([]model.Task, bool) {
	if index < 0 || index >= len(tasks) {
		return tasks, false
	}
	group := tasks[index].EffectiveGroup()
	last := -1
	for i := len(tasks) - 1; i > index; i-- {
		if tasks[i].EffectiveGroup() == group {
			last = i
			break
		}
	}
	if last < 0 {
		return tasks, false
	}
	moved := tasks[index]
	out := make([]model.Task, 0, len(tasks))
	out = append(out, tasks[:index]...)
	out = append(out, tasks[index+1:]...)
	// After the splice the element formerly at last sits at last-1, so
	// inserting at last places the task immediately after it.
	tail := make([]model.Task, 0, len(tasks))
	tail = append(tail, out[:last]...)
	tail = append(tail, moved)
	tail = append(tail, out[last:]...)
	return tail, true
}

// ReassignGroup rewrites every task in group from to group to, returning
// the new sequence and how many tasks changed.
func ReassignGroup(tasks []model.Task, from, to string) ([]model.Task, int) {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	changed := 0
	for i := range out {
		if out[i].EffectiveGroup() == from {
			out[i].GroupID = to
			changed++
		}
	}
	return out, changed
}

// CountUndone counts not-done tasks, optionally restricted to one group.
// An empty groupID means no filter.
func CountUndone(tasks []model.Task, groupID string) int {
	count := 0
	for _, t := range tasks {
		if t.IsDone {
			continue
		}
		if groupID != "" && t.EffectiveGroup() != groupID {
			continue
		}
		count++
	}
	return count
}

func FilterByGroup(tasks []model.Task, groupID string) []model.Task {
	if groupID == "" {
		out := make([]model.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.EffectiveGroup() == groupID {
			out = append(out, t)
		}
	}
	return out
}

// FocusedIndex returns the index of the first focused task, or -1. The
// single-focus invariant means anything past the first is a violation;
// this is the probe tests use to detect one.
func FocusedIndex(tasks []model.Task) int {
	for i, t := range tasks {
		if t.IsFocused {
			return i
		}
	}
	return -1
}
