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

// Package screen draws editor snapshots on a terminal and reads key events from it.
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	modal "github.com/timburks/modal/pkg/types"
)

const tabStop = 8

// The Screen draws the state of an Editor.
type Screen struct {
	size   modal.Size  // screen size
	offset modal.Point // first buffer row and display column shown
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(snapshot modal.Snapshot) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()
	editSize := modal.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols}
	if editSize.Rows < 1 {
		termbox.Flush()
		return
	}
	cursorCol := 0
	if snapshot.Cursor.Row < len(snapshot.Lines) {
		cursorCol = displayColumn([]rune(snapshot.Lines[snapshot.Cursor.Row]), snapshot.Cursor.Col)
	}
	s.offset = scroll(s.offset, modal.Point{Row: snapshot.Cursor.Row, Col: cursorCol}, editSize)

	for y := 0; y < editSize.Rows; y++ {
		row := s.offset.Row + y
		if row >= len(snapshot.Lines) {
			termbox.SetCell(0, y, '~', termbox.ColorBlue, termbox.ColorBlack)
			continue
		}
		s.renderLine(y, []rune(snapshot.Lines[row]), editSize.Cols)
	}
	s.renderInfoBar(snapshot)
	s.renderMessageBar(snapshot)
	if snapshot.CommandLine != "" {
		termbox.SetCursor(runewidth.StringWidth(snapshot.CommandLine), s.size.Rows-1)
	} else {
		termbox.SetCursor(cursorCol-s.offset.Col, snapshot.Cursor.Row-s.offset.Row)
	}
	termbox.Flush()
}

func (s *Screen) renderLine(y int, line []rune, cols int) {
	x := 0
	for _, c := range line {
		width := runeWidth(c, x)
		if c == '\t' {
			c = ' '
		}
		for i := 0; i < width; i++ {
			screenX := x + i - s.offset.Col
			if screenX >= cols {
				return
			}
			if screenX >= 0 && (i == 0 || c == ' ') {
				termbox.SetCell(screenX, y, c, termbox.ColorWhite, termbox.ColorBlack)
			}
		}
		x += width
	}
}

func (s *Screen) renderInfoBar(snapshot modal.Snapshot) {
	name := snapshot.FileName
	if name == "" {
		name = "[no name]"
	}
	if snapshot.Dirty {
		name += " [+]"
	}
	text := " modal - " + name + " "
	finalText := fmt.Sprintf(" %s %d/%d ", snapshot.Mode, snapshot.Cursor.Row+1, len(snapshot.Lines))
	s.renderBar(s.size.Rows-2, padBetween(text, finalText, s.size.Cols), termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) renderMessageBar(snapshot modal.Snapshot) {
	line := snapshot.Message
	if snapshot.CommandLine != "" {
		line = snapshot.CommandLine
	}
	s.renderBar(s.size.Rows-1, line, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) renderBar(y int, text string, fg, bg termbox.Attribute) {
	x := 0
	for _, ch := range text {
		if x >= s.size.Cols {
			return
		}
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

// padBetween fills the space between left and right with blanks to make a line of cols columns.
func padBetween(left, right string, cols int) string {
	gap := cols - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return runewidth.Truncate(left+" "+right, cols, "")
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

// runeWidth returns the number of columns c occupies when drawn at column x.
func runeWidth(c rune, x int) int {
	if c == '\t' {
		return tabStop - x%tabStop
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}

// displayColumn converts a character index to a screen column.
func displayColumn(line []rune, col int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x += runeWidth(line[i], x)
	}
	return x
}

// scroll adjusts offset so that cursor (in display columns) is visible in a window of size.
func scroll(offset, cursor modal.Point, size modal.Size) modal.Point {
	if cursor.Row < offset.Row {
		offset.Row = cursor.Row
	}
	if cursor.Row >= offset.Row+size.Rows {
		offset.Row = cursor.Row - size.Rows + 1
	}
	if cursor.Col < offset.Col {
		offset.Col = cursor.Col
	}
	if cursor.Col >= offset.Col+size.Cols {
		offset.Col = cursor.Col - size.Cols + 1
	}
	return offset
}

// GetNextEvent blocks until a key is pressed.
// Resize and other non-key events are reported as KeyUnsupported.
func (s *Screen) GetNextEvent() *modal.Event {
	return eventFor(termbox.PollEvent())
}

func eventFor(event termbox.Event) *modal.Event {
	if event.Type != termbox.EventKey {
		return modal.KeyEvent(modal.KeyUnsupported)
	}
	return convert(event.Key, event.Ch)
}

func convert(k termbox.Key, ch rune) *modal.Event {
	if ch != 0 {
		return modal.CharEvent(ch)
	}
	if k == termbox.KeySpace {
		return modal.CharEvent(' ')
	}
	return modal.KeyEvent(key(k))
}

func key(k termbox.Key) modal.Key {
	switch k {
	case termbox.KeyArrowDown:
		return modal.KeyArrowDown
	case termbox.KeyArrowLeft:
		return modal.KeyArrowLeft
	case termbox.KeyArrowRight:
		return modal.KeyArrowRight
	case termbox.KeyArrowUp:
		return modal.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return modal.KeyBackspace
	case termbox.KeyDelete:
		return modal.KeyDelete
	case termbox.KeyCtrlC:
		return modal.KeyCtrlCopy
	case termbox.KeyCtrlQ:
		return modal.KeyQuit
	case termbox.KeyCtrlR, termbox.KeyCtrlY:
		return modal.KeyCtrlRedo
	case termbox.KeyCtrlS:
		return modal.KeyCtrlSave
	case termbox.KeyCtrlV:
		return modal.KeyCtrlPaste
	case termbox.KeyCtrlZ:
		return modal.KeyCtrlUndo
	case termbox.KeyEnd:
		return modal.KeyEnd
	case termbox.KeyEnter:
		return modal.KeyEnter
	case termbox.KeyEsc:
		return modal.KeyEsc
	case termbox.KeyHome:
		return modal.KeyHome
	case termbox.KeyTab:
		return modal.KeyTab
	default:
		return modal.KeyUnsupported
	}
}
