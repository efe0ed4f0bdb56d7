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

package buffer

// A row of text in the buffer
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// insert text at col; col must be in [0, Length()]
func (r *Row) InsertText(col int, text []rune) {
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete count characters starting at col and return them
func (r *Row) DeleteText(col, count int) []rune {
	deleted := make([]rune, count)
	copy(deleted, r.Text[col:col+count])
	line := make([]rune, 0, len(r.Text)-count)
	line = append(line, r.Text[0:col]...)
	line = append(line, r.Text[col+count:]...)
	r.Text = line
	return deleted
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	after := make([]rune, len(r.Text)-col)
	copy(after, r.Text[col:])
	r.Text = r.Text[0:col:col]
	return &Row{Text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.Text)+len(other.Text))
	line = append(line, r.Text...)
	r.Text = append(line, other.Text...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}
