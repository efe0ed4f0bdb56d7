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

// Package pairs decides how typed brackets and quotes are paired.
// The functions here only make decisions; the editor performs the edits.
package pairs

// A Decision tells the editor what to do with a typed character.
type Decision int

const (
	Insert     Decision = iota // insert the character
	InsertPair                 // insert the character and its closer, cursor between them
	TypeOver                   // move past the identical character to the right
)

var closers = map[rune]rune{
	'(':  ')',
	'{':  '}',
	'[':  ']',
	'"':  '"',
	'\'': '\'',
}

// Closer returns the closing counterpart of an opening delimiter.
func Closer(c rune) (rune, bool) {
	closer, ok := closers[c]
	return closer, ok
}

func IsQuote(c rune) bool {
	return c == '"' || c == '\''
}

// IsCloser reports whether c closes some pair.
func IsCloser(c rune) bool {
	switch c {
	case ')', '}', ']', '"', '\'':
		return true
	}
	return false
}

func next(line []rune, col int) rune {
	if col >= 0 && col < len(line) {
		return line[col]
	}
	return 0
}

// OnOpen decides what typing opener c at col of line should do.
// A quote typed directly before the same quote is typed through, not nested.
func OnOpen(c rune, line []rune, col int) Decision {
	if _, ok := closers[c]; !ok {
		return Insert
	}
	if IsQuote(c) && next(line, col) == c {
		return TypeOver
	}
	return InsertPair
}

// OnClose decides what typing closer c at col of line should do.
func OnClose(c rune, line []rune, col int) Decision {
	if IsCloser(c) && next(line, col) == c {
		return TypeOver
	}
	return Insert
}

// Decide combines OnOpen and OnClose for any typed character.
func Decide(c rune, line []rune, col int) Decision {
	if d := OnClose(c, line, col); d == TypeOver {
		return d
	}
	return OnOpen(c, line, col)
}
