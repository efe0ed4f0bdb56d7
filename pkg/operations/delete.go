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

// DeleteText deletes Count characters of one row starting at Pos.
type DeleteText struct {
	Pos   modal.Point
	Count int
}

func (op *DeleteText) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	deleted, err := e.DeleteText(op.Pos, op.Count)
	if err != nil {
		return nil, op.Pos, err
	}
	inverse := &InsertText{
		Pos:  op.Pos,
		Text: string(deleted),
	}
	return inverse, op.Pos, nil
}
