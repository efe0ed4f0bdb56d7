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

// JoinLine joins a row with the one below it.
type JoinLine struct {
	Row int
}

func (op *JoinLine) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	joined, err := e.JoinLine(op.Row)
	if err != nil {
		return nil, modal.Point{Row: op.Row}, err
	}
	return &SplitLine{Pos: joined}, joined, nil
}
