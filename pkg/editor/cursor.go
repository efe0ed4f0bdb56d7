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
	"github.com/timburks/modal/pkg/buffer"
	modal "github.com/timburks/modal/pkg/types"
)

// A Cursor is a position in a buffer along with the column that vertical
// moves try to return to.
type Cursor struct {
	position modal.Point
	column   int  // sticky column for vertical moves
	sticky   bool // true while a run of vertical moves is in progress
}

func (c *Cursor) Get() modal.Point {
	return c.position
}

// Set moves the cursor and forgets the sticky column.
func (c *Cursor) Set(p modal.Point) {
	c.position = p
	c.sticky = false
}

// Move moves the cursor one step in direction and returns the new position.
func (c *Cursor) Move(direction modal.Direction, b *buffer.Buffer) modal.Point {
	c.Clamp(b)
	p := c.position
	switch direction {
	case modal.MoveLeft:
		if p.Col > 0 {
			p.Col--
		} else if p.Row > 0 {
			p.Row--
			p.Col = b.RowLength(p.Row)
		}
	case modal.MoveRight:
		if p.Col < b.RowLength(p.Row) {
			p.Col++
		} else if p.Row+1 < b.LineCount() {
			p.Row++
			p.Col = 0
		}
	case modal.MoveUp, modal.MoveDown:
		if !c.sticky {
			c.column = p.Col
		}
		if direction == modal.MoveUp && p.Row > 0 {
			p.Row--
		}
		if direction == modal.MoveDown && p.Row+1 < b.LineCount() {
			p.Row++
		}
		// don't go past the end of the line, but remember where we wanted to be
		p.Col = clipToRange(c.column, 0, b.RowLength(p.Row))
		c.position = p
		c.sticky = true
		return p
	case modal.MoveHome:
		p.Col = 0
	case modal.MoveEnd:
		p.Col = b.RowLength(p.Row)
	}
	c.Set(p)
	return p
}

// Clamp keeps the cursor inside the buffer. The sticky column survives clamping.
func (c *Cursor) Clamp(b *buffer.Buffer) {
	c.position.Row = clipToRange(c.position.Row, 0, b.LineCount()-1)
	c.position.Col = clipToRange(c.position.Col, 0, b.RowLength(c.position.Row))
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
