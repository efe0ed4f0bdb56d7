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
	modal "github.com/timburks/modal/pkg/types"
)

// The Clipboard holds the most recently copied or cut text.
// It keeps its own copy, so later edits to the buffer never change it.
type Clipboard struct {
	lines []string
	mode  modal.PasteMode
	full  bool
}

// Set replaces the clipboard contents.
func (c *Clipboard) Set(lines []string, mode modal.PasteMode) {
	c.lines = make([]string, len(lines))
	copy(c.lines, lines)
	c.mode = mode
	c.full = true
}

// Get returns a copy of the clipboard contents.
func (c *Clipboard) Get() ([]string, modal.PasteMode, error) {
	if !c.full {
		return nil, c.mode, modal.ErrEmpty
	}
	lines := make([]string, len(c.lines))
	copy(lines, c.lines)
	return lines, c.mode, nil
}

func (c *Clipboard) IsEmpty() bool {
	return !c.full
}
