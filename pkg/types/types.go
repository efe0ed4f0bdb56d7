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

// Package types contains the values and interfaces shared by the
// buffer, operations, editor and commander packages.
package types

// Editor modes
type Mode int

const (
	ModeCommand     Mode = 0
	ModeInsert      Mode = 1
	ModeConfirmExit Mode = 2
	ModeFileName    Mode = 3
	ModeQuit        Mode = 9999
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeInsert:
		return "insert"
	case ModeConfirmExit:
		return "confirm-exit"
	case ModeFileName:
		return "file-name"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Move directions
type Direction int

const (
	MoveUp    Direction = 0
	MoveDown  Direction = 1
	MoveRight Direction = 2
	MoveLeft  Direction = 3
	MoveHome  Direction = 4
	MoveEnd   Direction = 5
)

// Paste modes
type PasteMode int

const (
	PasteInline  PasteMode = 0
	PasteNewLine PasteMode = 1
)

type Point struct {
	Row int
	Col int
}

// Before reports whether p comes before q in document order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

type Size struct {
	Rows int
	Cols int
}

// A Span names a contiguous piece of text.
// For PasteInline spans, Start and End are on the same row and End.Col is exclusive.
// For PasteNewLine spans, rows Start.Row through End.Row are included and columns are ignored.
type Span struct {
	Mode  PasteMode
	Start Point
	End   Point
}

// A Snapshot is the read-only view of the editor handed to the renderer.
type Snapshot struct {
	Lines       []string
	Cursor      Point
	Dirty       bool
	Mode        Mode
	Message     string
	CommandLine string
	FileName    string
}

// Editable is the set of buffer primitives that operations are built from.
type Editable interface {
	InsertText(pos Point, text []rune) (Point, error)
	DeleteText(pos Point, count int) ([]rune, error)
	SplitLine(pos Point) (Point, error)
	JoinLine(row int) (Point, error)
	InsertLines(row int, lines []string, replace int) error
	DeleteLines(row int, count int) ([]string, bool, error)
	Line(row int) string
	RowLength(row int) int
	LineCount() int
}

// An Operation is one reversible edit.
// Perform applies it and returns its inverse along with the cursor position
// that naturally follows it. A failed Perform leaves the buffer unchanged.
type Operation interface {
	Perform(e Editable) (inverse Operation, cursor Point, err error)
}
