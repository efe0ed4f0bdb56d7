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

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	modal "github.com/timburks/modal/pkg/types"
)

func expectLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Unexpected lines (-want +got):\n%s", diff)
	}
}

func TestEmptyBufferHasOneRow(t *testing.T) {
	b := NewBuffer()
	if b.LineCount() != 1 {
		t.Errorf("Invalid row count: %d", b.LineCount())
	}
	b = NewBufferFromString("")
	expectLines(t, b, "")
}

func TestLoadAndStringRoundTrip(t *testing.T) {
	for _, text := range []string{"", "hello", "a\nb", "a\n", "\n\n", "tab\there\nünïcödé"} {
		b := NewBufferFromString(text)
		if got := b.String(); got != text {
			t.Errorf("Round trip of %q produced %q", text, got)
		}
	}
}

func TestInsertChar(t *testing.T) {
	b := NewBufferFromString("hllo")
	p, err := b.InsertChar(modal.Point{Row: 0, Col: 1}, 'e')
	if err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	if p != (modal.Point{Row: 0, Col: 2}) {
		t.Errorf("Unexpected position after insert: %+v", p)
	}
	expectLines(t, b, "hello")

	p, err = b.InsertChar(modal.Point{Row: 0, Col: 5}, 'é')
	if err != nil || p.Col != 6 {
		t.Errorf("Insert at end of line failed: %+v %+v", p, err)
	}
	expectLines(t, b, "helloé")
}

func TestInsertOutOfBounds(t *testing.T) {
	b := NewBufferFromString("abc")
	for _, p := range []modal.Point{{Row: 1, Col: 0}, {Row: 0, Col: 4}, {Row: -1, Col: 0}, {Row: 0, Col: -1}} {
		if _, err := b.InsertChar(p, 'x'); !errors.Is(err, modal.ErrOutOfBounds) {
			t.Errorf("Expected out of bounds at %+v, got %+v", p, err)
		}
	}
	expectLines(t, b, "abc")
}

func TestInsertTextRejectsNewline(t *testing.T) {
	b := NewBufferFromString("abc")
	if _, err := b.InsertText(modal.Point{}, []rune("x\ny")); !errors.Is(err, ErrNewline) {
		t.Errorf("Expected newline error, got %+v", err)
	}
	expectLines(t, b, "abc")
}

func TestDeleteChar(t *testing.T) {
	b := NewBufferFromString("abc\ndef")
	c, p, err := b.DeleteChar(modal.Point{Row: 0, Col: 2})
	if err != nil || c != 'b' || p != (modal.Point{Row: 0, Col: 1}) {
		t.Errorf("Unexpected delete result: %q %+v %+v", c, p, err)
	}
	expectLines(t, b, "ac", "def")

	c, p, err = b.DeleteChar(modal.Point{Row: 1, Col: 0})
	if err != nil || c != '\n' || p != (modal.Point{Row: 0, Col: 2}) {
		t.Errorf("Unexpected join result: %q %+v %+v", c, p, err)
	}
	expectLines(t, b, "acdef")

	if _, _, err = b.DeleteChar(modal.Point{Row: 0, Col: 0}); !errors.Is(err, modal.ErrNoop) {
		t.Errorf("Expected noop at start of buffer, got %+v", err)
	}
	if _, _, err = b.DeleteChar(modal.Point{Row: 3, Col: 0}); !errors.Is(err, modal.ErrOutOfBounds) {
		t.Errorf("Expected out of bounds, got %+v", err)
	}
}

func TestSplitLine(t *testing.T) {
	b := NewBufferFromString("abc\ndef")
	p, err := b.SplitLine(modal.Point{Row: 0, Col: 3})
	if err != nil || p != (modal.Point{Row: 1, Col: 0}) {
		t.Errorf("Unexpected split result: %+v %+v", p, err)
	}
	expectLines(t, b, "abc", "", "def")

	_, err = b.SplitLine(modal.Point{Row: 2, Col: 1})
	if err != nil {
		t.Fatalf("Split failed: %+v", err)
	}
	expectLines(t, b, "abc", "", "d", "ef")

	_, err = b.SplitLine(modal.Point{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("Split failed: %+v", err)
	}
	expectLines(t, b, "", "abc", "", "d", "ef")
}

func TestSplitDoesNotShareStorage(t *testing.T) {
	b := NewBufferFromString("abcdef")
	if _, err := b.SplitLine(modal.Point{Row: 0, Col: 3}); err != nil {
		t.Fatalf("Split failed: %+v", err)
	}
	if _, err := b.InsertChar(modal.Point{Row: 0, Col: 3}, 'X'); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	expectLines(t, b, "abcX", "def")
}

func TestJoinLine(t *testing.T) {
	b := NewBufferFromString("abc\ndef")
	p, err := b.JoinLine(0)
	if err != nil || p != (modal.Point{Row: 0, Col: 3}) {
		t.Errorf("Unexpected join result: %+v %+v", p, err)
	}
	expectLines(t, b, "abcdef")
	if _, err = b.JoinLine(0); !errors.Is(err, modal.ErrOutOfBounds) {
		t.Errorf("Expected out of bounds, got %+v", err)
	}
}

func TestDeleteText(t *testing.T) {
	b := NewBufferFromString("hello world")
	deleted, err := b.DeleteText(modal.Point{Row: 0, Col: 5}, 6)
	if err != nil || string(deleted) != " world" {
		t.Errorf("Unexpected delete result: %q %+v", string(deleted), err)
	}
	expectLines(t, b, "hello")
	if _, err = b.DeleteText(modal.Point{Row: 0, Col: 3}, 3); !errors.Is(err, modal.ErrOutOfBounds) {
		t.Errorf("Expected out of bounds, got %+v", err)
	}
	if _, err = b.DeleteText(modal.Point{Row: 0, Col: 3}, 0); !errors.Is(err, modal.ErrNoop) {
		t.Errorf("Expected noop, got %+v", err)
	}
	expectLines(t, b, "hello")
}

func TestDeleteAndInsertLines(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")
	lines, emptied, err := b.DeleteLines(1, 2)
	if err != nil || emptied {
		t.Fatalf("Unexpected delete result: %+v %v", err, emptied)
	}
	if diff := cmp.Diff([]string{"two", "three"}, lines); diff != "" {
		t.Errorf("Unexpected deleted lines (-want +got):\n%s", diff)
	}
	expectLines(t, b, "one")

	lines, emptied, err = b.DeleteLines(0, 1)
	if err != nil || !emptied {
		t.Fatalf("Expected buffer to be emptied: %+v %v", err, emptied)
	}
	expectLines(t, b, "")

	if err = b.InsertLines(0, []string{"one", "two"}, 1); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	expectLines(t, b, "one", "two")

	if err = b.InsertLines(2, []string{"three"}, 0); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	expectLines(t, b, "one", "two", "three")

	if err = b.InsertLines(4, []string{"x"}, 0); !errors.Is(err, modal.ErrOutOfBounds) {
		t.Errorf("Expected out of bounds, got %+v", err)
	}
	if err = b.InsertLines(0, []string{"x\ny"}, 0); !errors.Is(err, ErrNewline) {
		t.Errorf("Expected newline error, got %+v", err)
	}
	expectLines(t, b, "one", "two", "three")
}

func TestCharAt(t *testing.T) {
	b := NewBufferFromString("ab")
	if c := b.CharAt(modal.Point{Row: 0, Col: 1}); c != 'b' {
		t.Errorf("Unexpected character: %q", c)
	}
	if c := b.CharAt(modal.Point{Row: 0, Col: 2}); c != 0 {
		t.Errorf("Expected no character at end of line, got %q", c)
	}
}
