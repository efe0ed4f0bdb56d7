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

package screen

import (
	"testing"

	"github.com/nsf/termbox-go"

	modal "github.com/timburks/modal/pkg/types"
)

func TestConvert(t *testing.T) {
	for _, test := range []struct {
		key  termbox.Key
		ch   rune
		want modal.Event
	}{
		{key: 0, ch: 'x', want: modal.Event{Ch: 'x'}},
		{key: 0, ch: 'é', want: modal.Event{Ch: 'é'}},
		{key: termbox.KeySpace, want: modal.Event{Ch: ' '}},
		{key: termbox.KeyEnter, want: modal.Event{Key: modal.KeyEnter}},
		{key: termbox.KeyBackspace2, want: modal.Event{Key: modal.KeyBackspace}},
		{key: termbox.KeyBackspace, want: modal.Event{Key: modal.KeyBackspace}},
		{key: termbox.KeyCtrlS, want: modal.Event{Key: modal.KeyCtrlSave}},
		{key: termbox.KeyCtrlZ, want: modal.Event{Key: modal.KeyCtrlUndo}},
		{key: termbox.KeyCtrlY, want: modal.Event{Key: modal.KeyCtrlRedo}},
		{key: termbox.KeyCtrlQ, want: modal.Event{Key: modal.KeyQuit}},
		{key: termbox.KeyF1, want: modal.Event{Key: modal.KeyUnsupported}},
	} {
		if got := convert(test.key, test.ch); *got != test.want {
			t.Errorf("convert(%v, %q) = %+v, expected %+v", test.key, test.ch, *got, test.want)
		}
	}
}

func TestNonKeyEvents(t *testing.T) {
	for _, event := range []termbox.Event{
		{Type: termbox.EventResize, Width: 80, Height: 24},
		{Type: termbox.EventMouse, Key: termbox.MouseLeft},
	} {
		if got := eventFor(event); *got != (modal.Event{Key: modal.KeyUnsupported}) {
			t.Errorf("eventFor(%+v) = %+v, expected an unsupported key", event, *got)
		}
	}
	got := eventFor(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc})
	if *got != (modal.Event{Key: modal.KeyEsc}) {
		t.Errorf("Unexpected key event: %+v", *got)
	}
}

func TestDisplayColumn(t *testing.T) {
	for _, test := range []struct {
		line string
		col  int
		want int
	}{
		{"hello", 3, 3},
		{"\tx", 1, 8},
		{"ab\tx", 3, 8},
		{"日本語", 2, 4},
		{"abc", 10, 3},
	} {
		if got := displayColumn([]rune(test.line), test.col); got != test.want {
			t.Errorf("displayColumn(%q, %d) = %d, expected %d", test.line, test.col, got, test.want)
		}
	}
}

func TestScroll(t *testing.T) {
	size := modal.Size{Rows: 10, Cols: 20}
	for _, test := range []struct {
		offset, cursor, want modal.Point
	}{
		{modal.Point{}, modal.Point{Row: 5, Col: 5}, modal.Point{}},
		{modal.Point{}, modal.Point{Row: 10, Col: 0}, modal.Point{Row: 1}},
		{modal.Point{Row: 8}, modal.Point{Row: 3, Col: 0}, modal.Point{Row: 3}},
		{modal.Point{}, modal.Point{Row: 0, Col: 25}, modal.Point{Col: 6}},
		{modal.Point{Col: 6}, modal.Point{Row: 0, Col: 2}, modal.Point{Col: 2}},
	} {
		if got := scroll(test.offset, test.cursor, size); got != test.want {
			t.Errorf("scroll(%+v, %+v) = %+v, expected %+v", test.offset, test.cursor, got, test.want)
		}
	}
}

func TestPadBetween(t *testing.T) {
	if got := padBetween("ab", "cd", 8); got != "ab    cd" {
		t.Errorf("Unexpected padding: %q", got)
	}
	if got := padBetween("abcdef", "ghij", 8); got != "abcdef g" {
		t.Errorf("Unexpected truncation: %q", got)
	}
}
