//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"github.com/timburks/modal/pkg/operations"
	modal "github.com/timburks/modal/pkg/types"
)

// An Entry is one undo unit: an operation, its inverse, and the cursor
// positions before and after it was performed.
type Entry struct {
	Forward modal.Operation
	Inverse modal.Operation
	Before  modal.Point
	After   modal.Point
	Pair    bool // an opener together with its automatically inserted closer
}

// History keeps a linear timeline of undo units.
// Recording a new unit discards everything that could have been redone.
type History struct {
	past   []*Entry // stack of operations to undo
	future []*Entry // stack of operations to redo
	limit  int      // maximum number of undo units, 0 for no limit
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Record(entry *Entry) {
	h.future = nil
	h.past = append(h.past, entry)
	h.trim()
}

func (h *History) trim() {
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
}

// Undo performs the inverse of the last unit and returns the cursor position from before it.
func (h *History) Undo(e modal.Editable) (modal.Point, error) {
	if len(h.past) == 0 {
		return modal.Point{}, modal.ErrNothingToUndo
	}
	last := len(h.past) - 1
	entry := h.past[last]
	if _, _, err := entry.Inverse.Perform(e); err != nil {
		return entry.Before, err
	}
	h.past = h.past[0:last]
	h.future = append(h.future, entry)
	return entry.Before, nil
}

// Redo performs the last undone unit again and returns the cursor position from after it.
func (h *History) Redo(e modal.Editable) (modal.Point, error) {
	if len(h.future) == 0 {
		return modal.Point{}, modal.ErrNothingToRedo
	}
	last := len(h.future) - 1
	entry := h.future[last]
	inverse, _, err := entry.Forward.Perform(e)
	if err != nil {
		return entry.After, err
	}
	entry.Inverse = inverse
	h.future = h.future[0:last]
	h.past = append(h.past, entry)
	return entry.After, nil
}

// SplitPair turns an auto-inserted pair that ends at cursor into two units,
// one for the opener and one for the closer. It reports whether it did so.
func (h *History) SplitPair(cursor modal.Point) bool {
	if len(h.past) == 0 || len(h.future) != 0 {
		return false
	}
	last := len(h.past) - 1
	entry := h.past[last]
	if !entry.Pair || entry.After != cursor || cursor.Col == 0 {
		return false
	}
	sequence, ok := entry.Forward.(*operations.Sequence)
	if !ok || len(sequence.Operations) != 2 {
		return false
	}
	opener, ok1 := sequence.Operations[0].(*operations.InsertText)
	closer, ok2 := sequence.Operations[1].(*operations.InsertText)
	if !ok1 || !ok2 {
		return false
	}
	h.past[last] = &Entry{
		Forward: opener,
		Inverse: &operations.DeleteText{Pos: opener.Pos, Count: 1},
		Before:  entry.Before,
		After:   cursor,
	}
	h.past = append(h.past, &Entry{
		Forward: closer,
		Inverse: &operations.DeleteText{Pos: closer.Pos, Count: 1},
		Before:  closer.Pos,
		After:   modal.Point{Row: closer.Pos.Row, Col: closer.Pos.Col + 1},
	})
	h.trim()
	return true
}

func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

func (h *History) Len() int {
	return len(h.past)
}
