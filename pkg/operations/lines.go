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

package operations

import (
	modal "github.com/timburks/modal/pkg/types"
)

// InsertLines replaces Replace rows starting at Row with Lines.
// With Replace == 0 it simply inserts whole rows above Row.
type InsertLines struct {
	Row     int
	Lines   []string
	Replace int
}

func (op *InsertLines) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	cursor := modal.Point{Row: op.Row}
	if len(op.Lines) == 0 && op.Replace == 0 {
		return nil, cursor, modal.ErrNoop
	}
	before := e.LineCount()
	replaced := make([]string, 0, op.Replace)
	for i := 0; i < op.Replace && op.Row+i < before; i++ {
		replaced = append(replaced, e.Line(op.Row+i))
	}
	lines := make([]string, len(op.Lines))
	copy(lines, op.Lines)
	if err := e.InsertLines(op.Row, lines, op.Replace); err != nil {
		return nil, cursor, err
	}
	inverse := &InsertLines{
		Row:     op.Row,
		Lines:   replaced,
		Replace: len(lines),
	}
	if before-op.Replace+len(lines) == 0 {
		// the buffer kept a blank row that the inverse has to replace
		inverse.Replace = 1
	}
	if cursor.Row >= e.LineCount() {
		cursor.Row = e.LineCount() - 1
	}
	return inverse, cursor, nil
}

// DeleteLines deletes Count whole rows starting at Row.
type DeleteLines struct {
	Row   int
	Count int
}

func (op *DeleteLines) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	deleted, emptied, err := e.DeleteLines(op.Row, op.Count)
	if err != nil {
		return nil, modal.Point{Row: op.Row}, err
	}
	inverse := &InsertLines{
		Row:   op.Row,
		Lines: deleted,
	}
	if emptied {
		inverse.Replace = 1
	}
	cursor := modal.Point{Row: op.Row}
	if cursor.Row >= e.LineCount() {
		cursor.Row = e.LineCount() - 1
	}
	return inverse, cursor, nil
}
