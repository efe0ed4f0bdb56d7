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
	"fmt"
	"strings"

	"github.com/timburks/modal/pkg/buffer"
	"github.com/timburks/modal/pkg/operations"
	"github.com/timburks/modal/pkg/pairs"
	modal "github.com/timburks/modal/pkg/types"
)

// Options control editing behavior.
type Options struct {
	AutoPair  bool // insert closing brackets and quotes
	TabWidth  int  // tab stops for the tab key, 0 inserts a tab character
	UndoLimit int  // maximum number of undo units, 0 for no limit
}

func DefaultOptions() Options {
	return Options{AutoPair: true, TabWidth: 4}
}

// The Editor manages text editing in a single buffer.
type Editor struct {
	buffer    *buffer.Buffer // the document
	cursor    Cursor         // cursor position
	clipboard Clipboard      // used to cut/copy and paste
	history   *History       // undo and redo stacks
	dirty     bool           // true if the buffer changed since it was loaded or saved
	fileName  string         // name used for saving, may be empty
	options   Options
}

func NewEditor(options Options) *Editor {
	return &Editor{
		buffer:  buffer.NewBuffer(),
		history: NewHistory(options.UndoLimit),
		options: options,
	}
}

// Load replaces the document with text and starts a new editing session.
func (e *Editor) Load(text string) {
	e.buffer.LoadString(text)
	e.history.Clear()
	e.cursor.Set(modal.Point{})
	e.dirty = false
}

// Serialize returns the document as newline-joined lines.
func (e *Editor) Serialize() string {
	return e.buffer.String()
}

func (e *Editor) GetBuffer() *buffer.Buffer {
	return e.buffer
}

func (e *Editor) GetHistory() *History {
	return e.history
}

func (e *Editor) GetOptions() Options {
	return e.options
}

func (e *Editor) Lines() []string {
	return e.buffer.Lines()
}

func (e *Editor) GetCursor() modal.Point {
	return e.cursor.Get()
}

// SetCursor moves the cursor, keeping it inside the buffer.
func (e *Editor) SetCursor(p modal.Point) {
	e.cursor.Set(p)
	e.cursor.Clamp(e.buffer)
}

func (e *Editor) IsDirty() bool {
	return e.dirty
}

// MarkSaved records that the document was written out.
func (e *Editor) MarkSaved() {
	e.dirty = false
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

// Perform performs an operation and saves its inverse for undo.
func (e *Editor) Perform(op modal.Operation) error {
	return e.perform(op, nil, false)
}

func (e *Editor) perform(op modal.Operation, after *modal.Point, pair bool) error {
	before := e.cursor.Get()
	inverse, cursor, err := op.Perform(e.buffer)
	if err != nil {
		return err
	}
	if after != nil {
		cursor = *after
	}
	e.history.Record(&Entry{
		Forward: op,
		Inverse: inverse,
		Before:  before,
		After:   cursor,
		Pair:    pair,
	})
	e.SetCursor(cursor)
	e.dirty = true
	return nil
}

func (e *Editor) PerformUndo() error {
	cursor, err := e.history.Undo(e.buffer)
	if err != nil {
		return err
	}
	e.SetCursor(cursor)
	e.dirty = true
	return nil
}

func (e *Editor) PerformRedo() error {
	cursor, err := e.history.Redo(e.buffer)
	if err != nil {
		return err
	}
	e.SetCursor(cursor)
	e.dirty = true
	return nil
}

func (e *Editor) MoveCursor(direction modal.Direction) modal.Point {
	return e.cursor.Move(direction, e.buffer)
}

// MoveCursorToLine moves to the start of a 1-based line number.
func (e *Editor) MoveCursorToLine(line int) {
	e.SetCursor(modal.Point{Row: line - 1, Col: 0})
}

// InsertChar types a character at the cursor, pairing brackets and quotes when enabled.
func (e *Editor) InsertChar(c rune) error {
	if c == '\n' {
		return e.InsertNewline()
	}
	p := e.cursor.Get()
	decision := pairs.Insert
	if e.options.AutoPair {
		decision = pairs.Decide(c, []rune(e.buffer.Line(p.Row)), p.Col)
	}
	switch decision {
	case pairs.TypeOver:
		e.history.SplitPair(p)
		e.SetCursor(modal.Point{Row: p.Row, Col: p.Col + 1})
		return nil
	case pairs.InsertPair:
		closer, _ := pairs.Closer(c)
		op := &operations.Sequence{Operations: []modal.Operation{
			operations.InsertCharacter(p, c),
			operations.InsertCharacter(modal.Point{Row: p.Row, Col: p.Col + 1}, closer),
		}}
		between := modal.Point{Row: p.Row, Col: p.Col + 1}
		return e.perform(op, &between, true)
	default:
		return e.Perform(operations.InsertCharacter(p, c))
	}
}

// InsertTab inserts spaces up to the next tab stop as one unit.
func (e *Editor) InsertTab() error {
	p := e.cursor.Get()
	if e.options.TabWidth <= 0 {
		return e.Perform(operations.InsertCharacter(p, '\t'))
	}
	count := e.options.TabWidth - p.Col%e.options.TabWidth
	return e.Perform(&operations.InsertText{Pos: p, Text: strings.Repeat(" ", count)})
}

// InsertNewline splits the current line at the cursor.
func (e *Editor) InsertNewline() error {
	return e.Perform(&operations.SplitLine{Pos: e.cursor.Get()})
}

// InsertString inserts text that may span several lines as one unit.
func (e *Editor) InsertString(text string) error {
	p := e.cursor.Get()
	steps := make([]modal.Operation, 0)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			steps = append(steps, &operations.SplitLine{Pos: p})
			p = modal.Point{Row: p.Row + 1, Col: 0}
		}
		if line != "" {
			steps = append(steps, &operations.InsertText{Pos: p, Text: line})
			p.Col += len([]rune(line))
		}
	}
	return e.Perform(&operations.Sequence{Operations: steps})
}

// BackspaceChar deletes the character before the cursor, joining lines at the start of a line.
func (e *Editor) BackspaceChar() error {
	p := e.cursor.Get()
	if p.Col > 0 {
		return e.Perform(&operations.DeleteText{Pos: modal.Point{Row: p.Row, Col: p.Col - 1}, Count: 1})
	}
	if p.Row == 0 {
		return modal.ErrNoop
	}
	return e.Perform(&operations.JoinLine{Row: p.Row - 1})
}

// DeleteChar deletes the character under the cursor, joining lines at the end of a line.
func (e *Editor) DeleteChar() error {
	p := e.cursor.Get()
	if p.Col < e.buffer.RowLength(p.Row) {
		return e.Perform(&operations.DeleteText{Pos: p, Count: 1})
	}
	if p.Row+1 >= e.buffer.LineCount() {
		return modal.ErrNoop
	}
	return e.Perform(&operations.JoinLine{Row: p.Row})
}

// JoinRow joins the cursor's line with the line below.
func (e *Editor) JoinRow() error {
	return e.Perform(&operations.JoinLine{Row: e.cursor.Get().Row})
}

func (e *Editor) InsertLineBelowCursor() error {
	row := e.cursor.Get().Row + 1
	cursor := modal.Point{Row: row}
	return e.perform(&operations.InsertLines{Row: row, Lines: []string{""}}, &cursor, false)
}

func (e *Editor) InsertLineAboveCursor() error {
	row := e.cursor.Get().Row
	cursor := modal.Point{Row: row}
	return e.perform(&operations.InsertLines{Row: row, Lines: []string{""}}, &cursor, false)
}

func (e *Editor) spanText(span modal.Span) ([]string, error) {
	switch span.Mode {
	case modal.PasteInline:
		if span.Start.Row != span.End.Row || span.End.Col < span.Start.Col ||
			!e.buffer.Valid(span.Start) || !e.buffer.Valid(span.End) {
			return nil, fmt.Errorf("%w: span %+v", modal.ErrOutOfBounds, span)
		}
		if span.End.Col == span.Start.Col {
			return nil, modal.ErrNoop
		}
		line := []rune(e.buffer.Line(span.Start.Row))
		return []string{string(line[span.Start.Col:span.End.Col])}, nil
	case modal.PasteNewLine:
		if span.Start.Row < 0 || span.End.Row < span.Start.Row || span.End.Row >= e.buffer.LineCount() {
			return nil, fmt.Errorf("%w: span %+v", modal.ErrOutOfBounds, span)
		}
		lines := make([]string, 0, span.End.Row-span.Start.Row+1)
		for row := span.Start.Row; row <= span.End.Row; row++ {
			lines = append(lines, e.buffer.Line(row))
		}
		return lines, nil
	}
	return nil, fmt.Errorf("unknown paste mode %d", span.Mode)
}

// Copy saves a copy of the text in span on the clipboard.
func (e *Editor) Copy(span modal.Span) error {
	lines, err := e.spanText(span)
	if err != nil {
		return err
	}
	e.clipboard.Set(lines, span.Mode)
	return nil
}

// Cut copies span to the clipboard and deletes it as one undo unit.
func (e *Editor) Cut(span modal.Span) error {
	lines, err := e.spanText(span)
	if err != nil {
		return err
	}
	var op modal.Operation
	if span.Mode == modal.PasteNewLine {
		op = &operations.DeleteLines{Row: span.Start.Row, Count: len(lines)}
	} else {
		op = &operations.DeleteText{Pos: span.Start, Count: span.End.Col - span.Start.Col}
	}
	if err = e.Perform(op); err != nil {
		return err
	}
	e.clipboard.Set(lines, span.Mode)
	return nil
}

// Paste inserts the clipboard: inline text at the cursor, whole lines below the cursor's line.
// The clipboard keeps its contents.
func (e *Editor) Paste() error {
	lines, mode, err := e.clipboard.Get()
	if err != nil {
		return err
	}
	p := e.cursor.Get()
	if mode == modal.PasteNewLine {
		cursor := modal.Point{Row: p.Row + 1}
		return e.perform(&operations.InsertLines{Row: p.Row + 1, Lines: lines}, &cursor, false)
	}
	return e.Perform(&operations.InsertText{Pos: p, Text: strings.Join(lines, "")})
}

func (e *Editor) GetClipboard() *Clipboard {
	return &e.clipboard
}

func (e *Editor) lineSpan() modal.Span {
	row := e.cursor.Get().Row
	return modal.Span{
		Mode:  modal.PasteNewLine,
		Start: modal.Point{Row: row},
		End:   modal.Point{Row: row},
	}
}

// YankRow copies the cursor's line.
func (e *Editor) YankRow() error {
	return e.Copy(e.lineSpan())
}

// DeleteRow cuts the cursor's line.
func (e *Editor) DeleteRow() error {
	return e.Cut(e.lineSpan())
}

// DeleteCharacterAtCursor cuts the character under the cursor.
func (e *Editor) DeleteCharacterAtCursor() error {
	p := e.cursor.Get()
	if p.Col >= e.buffer.RowLength(p.Row) {
		return modal.ErrNoop
	}
	return e.Cut(modal.Span{
		Mode:  modal.PasteInline,
		Start: p,
		End:   modal.Point{Row: p.Row, Col: p.Col + 1},
	})
}

// DeleteToEndOfLine cuts from the cursor to the end of its line.
func (e *Editor) DeleteToEndOfLine() error {
	p := e.cursor.Get()
	return e.Cut(modal.Span{
		Mode:  modal.PasteInline,
		Start: p,
		End:   modal.Point{Row: p.Row, Col: e.buffer.RowLength(p.Row)},
	})
}

// Snapshot returns a copy of the editor state for rendering.
func (e *Editor) Snapshot() modal.Snapshot {
	return modal.Snapshot{
		Lines:    e.buffer.Lines(),
		Cursor:   e.cursor.Get(),
		Dirty:    e.dirty,
		FileName: e.fileName,
	}
}
