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

// SplitLine breaks a row in two at Pos.
type SplitLine struct {
	Pos modal.Point
}

func (op *SplitLine) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	cursor, err := e.SplitLine(op.Pos)
	if err != nil {
		return nil, op.Pos, err
	}
	return &JoinLine{Row: op.Pos.Row}, cursor, nil
}
