// Package tasklist derives the counters and the ordered display list of a
// user's tasks. Every function here is pure: the input slice is never
// modified and the same input always yields the same output.
package tasklist

import (
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"podash/pkg/models"
)

// Counts holds the task counters shown above the list
type Counts struct {
	Total     int
	Completed int
	Pending   int
}

// Summarize counts tasks by user status. Anything that is not literally
// completed counts as pending.
func Summarize(tasks []models.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted() {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}

// DisplayList drops completed tasks and orders the rest urgent first, then
// newest first.
func DisplayList(tasks []models.Task) []models.Task {
	open := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCompleted() {
			open = append(open, t)
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		return less(open[i], open[j])
	})
	return open
}

func less(a, b models.Task) bool {
	if a.Urgent != b.Urgent {
		return a.Urgent
	}

	if hasCreatedAt(a) && hasCreatedAt(b) {
		return a.CreatedAt.After(b.CreatedAt.Time)
	}

	ta, okA := IDTimestamp(a.ID)
	tb, okB := IDTimestamp(b.ID)
	if !okA || !okB {
		return false
	}
	return ta > tb
}

func hasCreatedAt(t models.Task) bool {
	return t.CreatedAt != nil && !t.CreatedAt.IsZero()
}

// IDTimestamp extracts a creation time in seconds from a task id.
//
// ObjectIDs carry their creation time in the first four bytes. For any other
// id the leading hex digits of the first eight characters are read as an
// integer, which only orders correctly when the id generator puts a
// monotonically increasing time there. Ids without a leading hex digit have
// no timestamp.
func IDTimestamp(id string) (int64, bool) {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid.Timestamp().Unix(), true
	}

	prefix := id
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	n := 0
	for n < len(prefix) && isHex(prefix[n]) {
		n++
	}
	if n == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(prefix[:n], 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
