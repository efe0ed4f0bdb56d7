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

// InsertText inserts text without newlines at a position.
type InsertText struct {
	Pos  modal.Point
	Text string
}

func (op *InsertText) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	text := []rune(op.Text)
	if len(text) == 0 {
		return nil, op.Pos, modal.ErrNoop
	}
	cursor, err := e.InsertText(op.Pos, text)
	if err != nil {
		return nil, op.Pos, err
	}
	inverse := &DeleteText{
		Pos:   op.Pos,
		Count: len(text),
	}
	return inverse, cursor, nil
}

// InsertCharacter returns the operation that types c at pos.
func InsertCharacter(pos modal.Point, c rune) *InsertText {
	return &InsertText{Pos: pos, Text: string(c)}
}
