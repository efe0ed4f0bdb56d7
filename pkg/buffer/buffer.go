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

// Package buffer holds the text of a document as a list of rows of runes.
// A buffer always has at least one row; an empty document is one empty row.
// Every mutating method validates its arguments before changing anything,
// so a call either applies completely or returns an error and leaves the
// buffer as it was.
package buffer

import (
	"errors"
	"fmt"
	"strings"

	modal "github.com/timburks/modal/pkg/types"
)

// ErrNewline is returned when inline text contains a line break.
var ErrNewline = errors.New("inline text contains a newline")

// A Buffer represents the document being edited.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

// NewBufferFromString returns a buffer holding text split on newlines.
func NewBufferFromString(text string) *Buffer {
	b := &Buffer{}
	b.LoadString(text)
	return b
}

func (b *Buffer) LoadString(text string) {
	lines := strings.Split(text, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// String joins the rows with newlines; LoadString(String()) is an identity.
func (b *Buffer) String() string {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(string(row.Text))
	}
	return s.String()
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].String()
}

func (b *Buffer) LineCount() int {
	return len(b.rows)
}

func (b *Buffer) RowLength(row int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return b.rows[row].Length()
}

// CharAt returns the character under p, or 0 when p is at or past the end of its row.
func (b *Buffer) CharAt(p modal.Point) rune {
	if p.Row < 0 || p.Row >= len(b.rows) {
		return 0
	}
	row := b.rows[p.Row]
	if p.Col < 0 || p.Col >= row.Length() {
		return 0
	}
	return row.Text[p.Col]
}

// TextAfter returns the text of row from col to the end of the row.
func (b *Buffer) TextAfter(row, col int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].TextAfter(col)
}

// Valid reports whether p addresses a row and a column in [0, row length].
func (b *Buffer) Valid(p modal.Point) bool {
	return p.Row >= 0 && p.Row < len(b.rows) && p.Col >= 0 && p.Col <= b.rows[p.Row].Length()
}

func (b *Buffer) check(p modal.Point) error {
	if !b.Valid(p) {
		return fmt.Errorf("%w: %d,%d", modal.ErrOutOfBounds, p.Row, p.Col)
	}
	return nil
}

func (b *Buffer) InsertChar(pos modal.Point, c rune) (modal.Point, error) {
	return b.InsertText(pos, []rune{c})
}

// InsertText inserts text into a single row and returns the position after it.
func (b *Buffer) InsertText(pos modal.Point, text []rune) (modal.Point, error) {
	if err := b.check(pos); err != nil {
		return pos, err
	}
	for _, c := range text {
		if c == '\n' {
			return pos, ErrNewline
		}
	}
	b.rows[pos.Row].InsertText(pos.Col, text)
	return modal.Point{Row: pos.Row, Col: pos.Col + len(text)}, nil
}

// DeleteText removes count characters of a single row starting at pos.
func (b *Buffer) DeleteText(pos modal.Point, count int) ([]rune, error) {
	if err := b.check(pos); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, modal.ErrNoop
	}
	if pos.Col+count > b.rows[pos.Row].Length() {
		return nil, fmt.Errorf("%w: %d characters at %d,%d", modal.ErrOutOfBounds, count, pos.Row, pos.Col)
	}
	return b.rows[pos.Row].DeleteText(pos.Col, count), nil
}

// DeleteChar deletes the character before pos, the way backspace does.
// At the start of a row it joins the row to the previous one and returns '\n'.
func (b *Buffer) DeleteChar(pos modal.Point) (rune, modal.Point, error) {
	if err := b.check(pos); err != nil {
		return 0, pos, err
	}
	if pos.Col > 0 {
		deleted := b.rows[pos.Row].DeleteText(pos.Col-1, 1)
		return deleted[0], modal.Point{Row: pos.Row, Col: pos.Col - 1}, nil
	}
	if pos.Row == 0 {
		return 0, pos, modal.ErrNoop
	}
	joined, err := b.JoinLine(pos.Row - 1)
	if err != nil {
		return 0, pos, err
	}
	return '\n', joined, nil
}

// SplitLine breaks the row at pos; the text after pos moves to a new row below.
func (b *Buffer) SplitLine(pos modal.Point) (modal.Point, error) {
	if err := b.check(pos); err != nil {
		return pos, err
	}
	newRow := b.rows[pos.Row].Split(pos.Col)
	i := pos.Row + 1
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
	return modal.Point{Row: i, Col: 0}, nil
}

// JoinLine appends row+1 to row and returns the position where they meet.
func (b *Buffer) JoinLine(row int) (modal.Point, error) {
	if row < 0 || row+1 >= len(b.rows) {
		return modal.Point{Row: row}, fmt.Errorf("%w: no row after %d", modal.ErrOutOfBounds, row)
	}
	joined := modal.Point{Row: row, Col: b.rows[row].Length()}
	b.rows[row].Join(b.rows[row+1])
	b.rows = append(b.rows[0:row+1], b.rows[row+2:]...)
	return joined, nil
}

// InsertLines removes replace rows at row and inserts lines in their place.
// If that would leave the buffer without rows, a single empty row remains.
func (b *Buffer) InsertLines(row int, lines []string, replace int) error {
	if row < 0 || row > len(b.rows) || replace < 0 || row+replace > len(b.rows) {
		return fmt.Errorf("%w: rows %d+%d", modal.ErrOutOfBounds, row, replace)
	}
	rows := make([]*Row, 0, len(b.rows)-replace+len(lines))
	rows = append(rows, b.rows[0:row]...)
	for _, line := range lines {
		if strings.ContainsRune(line, '\n') {
			return ErrNewline
		}
		rows = append(rows, NewRow(line))
	}
	rows = append(rows, b.rows[row+replace:]...)
	if len(rows) == 0 {
		rows = append(rows, NewRow(""))
	}
	b.rows = rows
	return nil
}

// DeleteLines removes count rows starting at row and returns their text.
// emptied is true when every row was removed and a blank row was left behind.
func (b *Buffer) DeleteLines(row int, count int) (lines []string, emptied bool, err error) {
	if count <= 0 {
		return nil, false, modal.ErrNoop
	}
	if row < 0 || row+count > len(b.rows) {
		return nil, false, fmt.Errorf("%w: rows %d+%d", modal.ErrOutOfBounds, row, count)
	}
	lines = make([]string, count)
	for i := 0; i < count; i++ {
		lines[i] = b.rows[row+i].String()
	}
	b.rows = append(b.rows[0:row], b.rows[row+count:]...)
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
		emptied = true
	}
	return lines, emptied, nil
}
