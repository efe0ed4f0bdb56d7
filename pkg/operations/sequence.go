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
	"log"

	modal "github.com/timburks/modal/pkg/types"
)

// A Sequence performs several operations as a single undoable unit.
// If any step fails, the steps already performed are rolled back.
type Sequence struct {
	Operations []modal.Operation
}

func (op *Sequence) Perform(e modal.Editable) (modal.Operation, modal.Point, error) {
	var cursor modal.Point
	inverses := make([]modal.Operation, 0, len(op.Operations))
	for _, step := range op.Operations {
		inverse, c, err := step.Perform(e)
		if err != nil {
			rollback(e, inverses)
			return nil, cursor, err
		}
		inverses = append(inverses, inverse)
		cursor = c
	}
	if len(inverses) == 0 {
		return nil, cursor, modal.ErrNoop
	}
	// undo the steps in reverse order
	operations := make([]modal.Operation, len(inverses))
	for i, inverse := range inverses {
		operations[len(inverses)-1-i] = inverse
	}
	return &Sequence{Operations: operations}, cursor, nil
}

func rollback(e modal.Editable, inverses []modal.Operation) {
	for i := len(inverses) - 1; i >= 0; i-- {
		if _, _, err := inverses[i].Perform(e); err != nil {
			log.Printf("rollback failed: %+v", err)
		}
	}
}
