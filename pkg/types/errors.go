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

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for positions outside the document.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrNoop is returned when a request has nothing to act on.
	ErrNoop = errors.New("nothing to do")

	ErrNothingToUndo = fmt.Errorf("nothing to undo: %w", ErrNoop)
	ErrNothingToRedo = fmt.Errorf("nothing to redo: %w", ErrNoop)
	ErrEmpty         = fmt.Errorf("clipboard is empty: %w", ErrNoop)

	ErrTerminated = errors.New("editor has quit")
	ErrNoFileName = errors.New("no file name")
)
