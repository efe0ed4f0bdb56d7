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

package commander

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/timburks/modal/pkg/editor"
	modal "github.com/timburks/modal/pkg/types"
)

// ErrNoSaver is returned when saving without a place to save to.
var ErrNoSaver = errors.New("saving is not available")

const fileNamePrompt = "File name: "

// A Saver writes the document somewhere, usually to a file.
type Saver interface {
	Save(path string, text string) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(path string, text string) error

func (f SaverFunc) Save(path string, text string) error {
	return f(path, text)
}

// CommandHistory remembers command lines between sessions.
type CommandHistory interface {
	AddCmd(text string) (int, error)
	Cmds() ([]string, error)
}

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor        *editor.Editor
	mode          modal.Mode     // editor mode
	editKeys      string         // edit key sequences in progress
	commandLine   bool           // true while the command line is open
	commandText   string         // command line or file name as it is being typed
	message       string         // status message
	saver         Saver          // writes the document
	history       CommandHistory // previously entered command lines
	recall        []string       // command lines available to ArrowUp/ArrowDown
	recallIndex   int            // position in recall while browsing
	afterSave     modal.Mode     // mode entered when the file name prompt closes
	quitAfterSave bool           // quit once the prompted save succeeds
}

func NewCommander(e *editor.Editor, mode modal.Mode) *Commander {
	if mode != modal.ModeInsert {
		mode = modal.ModeCommand
	}
	return &Commander{editor: e, mode: mode}
}

func (c *Commander) SetSaver(s Saver) {
	c.saver = s
}

func (c *Commander) SetCommandHistory(h CommandHistory) {
	c.history = h
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetMode() modal.Mode {
	return c.mode
}

func (c *Commander) SetMode(m modal.Mode) {
	c.mode = m
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsRunning() bool {
	return c.mode != modal.ModeQuit
}

// Snapshot returns everything a renderer needs to draw the editor.
func (c *Commander) Snapshot() modal.Snapshot {
	s := c.editor.Snapshot()
	s.Mode = c.mode
	s.Message = c.message
	if c.mode == modal.ModeFileName {
		s.CommandLine = fileNamePrompt + c.commandText
	} else if c.commandLine {
		s.CommandLine = ":" + c.commandText
	}
	return s
}

// HandleEvent processes one event and returns the resulting snapshot.
// Errors are never fatal; they are also reflected in the snapshot's message.
func (c *Commander) HandleEvent(event *modal.Event) (modal.Snapshot, error) {
	err := c.ProcessEvent(event)
	return c.Snapshot(), err
}

func (c *Commander) ProcessEvent(event *modal.Event) error {
	var err error
	switch c.mode {
	case modal.ModeQuit:
		return modal.ErrTerminated
	case modal.ModeConfirmExit:
		err = c.processKeyConfirmExitMode(event)
	case modal.ModeFileName:
		err = c.processKeyFileNameMode(event)
	case modal.ModeInsert:
		c.message = ""
		if !c.processGlobalKey(event, &err) {
			err = c.processKeyInsertMode(event)
		}
	case modal.ModeCommand:
		if c.commandLine {
			err = c.processKeyCommandLine(event)
		} else {
			c.message = ""
			if !c.processGlobalKey(event, &err) {
				err = c.processKeyCommandMode(event)
			}
		}
	}
	if err != nil {
		c.report(err)
	}
	return err
}

// report puts a description of err on the message bar.
func (c *Commander) report(err error) {
	switch {
	case errors.Is(err, modal.ErrNothingToUndo):
		c.message = "Already at oldest change"
	case errors.Is(err, modal.ErrNothingToRedo):
		c.message = "Already at newest change"
	case errors.Is(err, modal.ErrEmpty):
		c.message = "Nothing to paste"
	case errors.Is(err, modal.ErrNoop):
		// nothing happened, nothing to say
	default:
		log.Printf("%+v", err)
		c.message = err.Error()
	}
}

// keys that work the same way in insert and command mode
func (c *Commander) processGlobalKey(event *modal.Event, err *error) bool {
	e := c.editor
	switch event.Key {
	case modal.KeyCtrlSave:
		*err = c.saveOrAsk("", c.mode)
	case modal.KeyCtrlCopy:
		*err = e.YankRow()
		if *err == nil {
			c.message = "Line copied"
		}
	case modal.KeyCtrlPaste:
		*err = e.Paste()
	case modal.KeyCtrlUndo:
		*err = e.PerformUndo()
	case modal.KeyCtrlRedo:
		*err = e.PerformRedo()
	case modal.KeyQuit:
		c.quit()
	default:
		return false
	}
	c.editKeys = ""
	return true
}

func (c *Commander) move(event *modal.Event) bool {
	e := c.editor
	switch event.Key {
	case modal.KeyArrowUp:
		e.MoveCursor(modal.MoveUp)
	case modal.KeyArrowDown:
		e.MoveCursor(modal.MoveDown)
	case modal.KeyArrowLeft:
		e.MoveCursor(modal.MoveLeft)
	case modal.KeyArrowRight:
		e.MoveCursor(modal.MoveRight)
	case modal.KeyHome:
		e.MoveCursor(modal.MoveHome)
	case modal.KeyEnd:
		e.MoveCursor(modal.MoveEnd)
	default:
		return false
	}
	return true
}

func (c *Commander) processKeyInsertMode(event *modal.Event) error {
	e := c.editor
	if c.move(event) {
		return nil
	}
	switch event.Key {
	case modal.KeyEsc: // end insert mode
		c.mode = modal.ModeCommand
		return nil
	case modal.KeyEnter:
		return e.InsertNewline()
	case modal.KeyBackspace:
		return e.BackspaceChar()
	case modal.KeyDelete:
		return e.DeleteChar()
	case modal.KeyTab:
		return e.InsertTab()
	case modal.KeyNone:
		if event.Ch != 0 {
			return e.InsertChar(event.Ch)
		}
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *modal.Event) error {
	e := c.editor
	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		keys := c.editKeys
		c.editKeys = ""
		switch {
		case keys == "d" && ch == 'd':
			return e.DeleteRow()
		case keys == "y" && ch == 'y':
			err := e.YankRow()
			if err == nil {
				c.message = "Line copied"
			}
			return err
		}
		// any other key cancels the pending command and is handled normally
	}
	if c.move(event) {
		return nil
	}
	switch key {
	case modal.KeyEsc:
		return nil
	case modal.KeyEnter:
		e.MoveCursor(modal.MoveDown)
		return nil
	case modal.KeyBackspace:
		e.MoveCursor(modal.MoveLeft)
		return nil
	case modal.KeyDelete:
		return e.DeleteCharacterAtCursor()
	}
	if key != modal.KeyNone || ch == 0 {
		return nil
	}
	switch ch {
	//
	// commands go to the message bar
	//
	case ':':
		c.openCommandLine()
	//
	// cursor movement isn't logged
	//
	case 'h':
		e.MoveCursor(modal.MoveLeft)
	case 'j':
		e.MoveCursor(modal.MoveDown)
	case 'k':
		e.MoveCursor(modal.MoveUp)
	case 'l':
		e.MoveCursor(modal.MoveRight)
	case '0':
		e.MoveCursor(modal.MoveHome)
	case '$':
		e.MoveCursor(modal.MoveEnd)
	//
	// entering insert mode
	//
	case 'i':
		c.mode = modal.ModeInsert
	case 'a':
		p := e.GetCursor()
		if p.Col < e.GetBuffer().RowLength(p.Row) {
			e.MoveCursor(modal.MoveRight)
		}
		c.mode = modal.ModeInsert
	case 'I':
		e.MoveCursor(modal.MoveHome)
		c.mode = modal.ModeInsert
	case 'A':
		e.MoveCursor(modal.MoveEnd)
		c.mode = modal.ModeInsert
	case 'o':
		if err := e.InsertLineBelowCursor(); err != nil {
			return err
		}
		c.mode = modal.ModeInsert
	case 'O':
		if err := e.InsertLineAboveCursor(); err != nil {
			return err
		}
		c.mode = modal.ModeInsert
	//
	// edits are saved for undo
	//
	case 'x':
		return e.DeleteCharacterAtCursor()
	case 'D':
		return e.DeleteToEndOfLine()
	case 'J':
		return e.JoinRow()
	case 'p':
		return e.Paste()
	case 'u':
		return e.PerformUndo()
	//
	// a few keys open multi-key commands
	//
	case 'd':
		c.editKeys = "d"
	case 'y':
		c.editKeys = "y"
	}
	return nil
}

func (c *Commander) openCommandLine() {
	c.commandLine = true
	c.commandText = ""
	c.message = ""
	c.recall = nil
	if c.history != nil {
		cmds, err := c.history.Cmds()
		if err != nil {
			log.Printf("reading command history: %+v", err)
		}
		c.recall = cmds
	}
	c.recallIndex = len(c.recall)
}

func (c *Commander) closeCommandLine() {
	c.commandLine = false
	c.commandText = ""
}

func (c *Commander) processKeyCommandLine(event *modal.Event) error {
	switch event.Key {
	case modal.KeyEsc:
		c.closeCommandLine()
	case modal.KeyEnter:
		text := c.commandText
		c.closeCommandLine()
		return c.PerformCommand(text)
	case modal.KeyBackspace:
		if c.commandText == "" {
			c.closeCommandLine()
		} else {
			runes := []rune(c.commandText)
			c.commandText = string(runes[0 : len(runes)-1])
		}
	case modal.KeyArrowUp:
		if c.recallIndex > 0 {
			c.recallIndex--
			c.commandText = c.recall[c.recallIndex]
		}
	case modal.KeyArrowDown:
		if c.recallIndex < len(c.recall) {
			c.recallIndex++
		}
		if c.recallIndex < len(c.recall) {
			c.commandText = c.recall[c.recallIndex]
		} else {
			c.commandText = ""
		}
	case modal.KeyTab:
		c.commandText += " "
	case modal.KeyNone:
		if event.Ch != 0 {
			c.commandText += string(event.Ch)
		}
	}
	return nil
}

// PerformCommand runs a command line as if it had been typed after ':'.
func (c *Commander) PerformCommand(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if c.history != nil {
		if _, err := c.history.AddCmd(text); err != nil {
			log.Printf("saving command history: %+v", err)
		}
	}
	if strings.HasPrefix(text, "(") {
		c.message = c.ParseEval(text)
		return nil
	}
	e := c.editor
	parts := strings.Fields(text)
	if i, err := strconv.Atoi(parts[0]); err == nil {
		e.MoveCursorToLine(i)
		return nil
	}
	var filename string
	if len(parts) == 2 {
		filename = parts[1]
	}
	switch parts[0] {
	case "w", "write":
		return c.saveOrAsk(filename, modal.ModeCommand)
	case "q", "quit":
		c.quit()
	case "q!", "quit!":
		c.mode = modal.ModeQuit
	case "wq", "x":
		return c.saveOrAsk(filename, modal.ModeQuit)
	case "$":
		e.MoveCursorToLine(e.GetBuffer().LineCount())
	case "cursor":
		cursor := e.GetCursor()
		c.message = fmt.Sprintf("%d,%d", cursor.Row, cursor.Col)
	case "undo":
		return e.PerformUndo()
	case "redo":
		return e.PerformRedo()
	default:
		c.message = fmt.Sprintf("Not an editor command: %s", text)
	}
	return nil
}

// save writes the document to path, or to the editor's file name if path is empty.
func (c *Commander) save(path string) error {
	e := c.editor
	if path == "" {
		path = e.GetFileName()
	}
	if path == "" {
		return modal.ErrNoFileName
	}
	if c.saver == nil {
		return ErrNoSaver
	}
	if err := c.saver.Save(path, e.Serialize()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	e.SetFileName(path)
	e.MarkSaved()
	c.message = fmt.Sprintf("%q written, %d lines", path, e.GetBuffer().LineCount())
	return nil
}

// saveOrAsk saves like save, but opens the file name prompt when there is no name to save to.
// After a successful save the commander enters mode next.
func (c *Commander) saveOrAsk(path string, next modal.Mode) error {
	if path == "" && c.editor.GetFileName() == "" {
		c.afterSave = next
		if next == modal.ModeQuit {
			// a cancelled save-and-quit goes back to editing
			c.afterSave = modal.ModeCommand
		}
		c.mode = modal.ModeFileName
		c.commandText = ""
		c.editKeys = ""
		c.message = ""
		c.quitAfterSave = next == modal.ModeQuit
		return nil
	}
	if err := c.save(path); err != nil {
		return err
	}
	c.mode = next
	return nil
}

// processKeyFileNameMode edits the file name prompt.
func (c *Commander) processKeyFileNameMode(event *modal.Event) error {
	switch event.Key {
	case modal.KeyEsc:
		c.closeFileNamePrompt()
	case modal.KeyEnter:
		name := strings.TrimSpace(c.commandText)
		quit := c.quitAfterSave
		c.closeFileNamePrompt()
		if name == "" {
			return modal.ErrNoFileName
		}
		if err := c.save(name); err != nil {
			return err
		}
		if quit {
			c.mode = modal.ModeQuit
		}
	case modal.KeyBackspace:
		if runes := []rune(c.commandText); len(runes) > 0 {
			c.commandText = string(runes[0 : len(runes)-1])
		}
	case modal.KeyTab:
		c.commandText += " "
	case modal.KeyNone:
		if event.Ch != 0 {
			c.commandText += string(event.Ch)
		}
	}
	return nil
}

func (c *Commander) closeFileNamePrompt() {
	c.mode = c.afterSave
	c.commandText = ""
	c.quitAfterSave = false
}

// quit stops the editor, or asks first if there are unsaved changes.
func (c *Commander) quit() {
	if !c.editor.IsDirty() {
		c.mode = modal.ModeQuit
		return
	}
	c.mode = modal.ModeConfirmExit
	c.message = "Unsaved changes: quit anyway? (y)es, (s)ave and quit, (n)o"
}

func (c *Commander) processKeyConfirmExitMode(event *modal.Event) error {
	if event.Key == modal.KeyEsc {
		c.mode = modal.ModeCommand
		c.message = ""
		return nil
	}
	switch event.Ch {
	case 'y', 'Y': // quit and discard changes
		c.mode = modal.ModeQuit
	case 's', 'S': // save, then quit
		c.mode = modal.ModeCommand
		return c.saveOrAsk("", modal.ModeQuit)
	case 'n', 'N':
		c.mode = modal.ModeCommand
		c.message = ""
	}
	return nil
}
