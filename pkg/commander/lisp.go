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
	"os"
	"strings"
	"sync"

	"github.com/steelseries/golisp"

	modal "github.com/timburks/modal/pkg/types"
)

// golisp keeps a single global environment, so primitives act on the
// commander that is currently evaluating.
var (
	activeMutex sync.Mutex
	active      *Commander
)

type primitive func(c *Commander, args *golisp.Data) (*golisp.Data, error)

func bind(name string, argCount string, f primitive) {
	golisp.MakePrimitiveFunction(name, argCount, func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if active == nil {
			return nil, fmt.Errorf("%s: no editor", name)
		}
		return f(active, args)
	})
}

func init() {
	bind("insert-text", "1", lispInsert)
	bind("split-line", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.InsertNewline())
	})
	bind("backspace", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.BackspaceChar())
	})
	bind("delete-char", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.DeleteChar())
	})
	bind("undo", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.PerformUndo())
	})
	bind("redo", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.PerformRedo())
	})
	bind("yank-row", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.YankRow())
	})
	bind("delete-row", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.DeleteRow())
	})
	bind("paste", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorResult(c, c.editor.Paste())
	})
	bind("save", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		if err := c.save(""); err != nil {
			return nil, err
		}
		return golisp.StringWithValue(c.editor.GetFileName()), nil
	})
	for name, direction := range map[string]modal.Direction{
		"cursor-up":    modal.MoveUp,
		"cursor-down":  modal.MoveDown,
		"cursor-left":  modal.MoveLeft,
		"cursor-right": modal.MoveRight,
		"line-start":   modal.MoveHome,
		"line-end":     modal.MoveEnd,
	} {
		direction := direction
		bind(name, "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
			c.editor.MoveCursor(direction)
			return cursorResult(c, nil)
		})
	}
	bind("goto-line", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, err := integerArgument("goto-line", golisp.Car(args))
		if err != nil {
			return nil, err
		}
		c.editor.MoveCursorToLine(n)
		return cursorResult(c, nil)
	})
	bind("line-text", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, err := integerArgument("line-text", golisp.Car(args))
		if err != nil {
			return nil, err
		}
		if n < 1 || n > c.editor.GetBuffer().LineCount() {
			return nil, fmt.Errorf("line-text: %w: %d", modal.ErrOutOfBounds, n)
		}
		return golisp.StringWithValue(c.editor.GetBuffer().Line(n - 1)), nil
	})
	bind("line-count", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.GetBuffer().LineCount())), nil
	})
	bind("cursor-row", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
	})
	bind("cursor-col", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.GetCursor().Col + 1)), nil
	})
	bind("editor-mode", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.StringWithValue(c.mode.String()), nil
	})
}

// insert a string at the cursor as one undo unit
func lispInsert(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	return cursorResult(c, c.editor.InsertString(golisp.StringValue(val)))
}

func integerArgument(name string, val *golisp.Data) (int, error) {
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

// editing primitives evaluate to the 1-based cursor position
func cursorResult(c *Commander, err error) (*golisp.Data, error) {
	if err != nil && !errors.Is(err, modal.ErrNoop) {
		return nil, err
	}
	p := c.editor.GetCursor()
	return golisp.StringWithValue(fmt.Sprintf("%d,%d", p.Row+1, p.Col+1)), nil
}

// ParseEval evaluates a lisp expression against the editor and returns its printed value.
// Errors are returned as text.
func (c *Commander) ParseEval(command string) string {
	output, err := c.eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return output
}

func (c *Commander) eval(command string) (string, error) {
	activeMutex.Lock()
	defer activeMutex.Unlock()
	active = c
	defer func() { active = nil }()

	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates each top-level expression in a file.
// It stops at the first expression that fails.
func (c *Commander) ParseEvalFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	expressions, err := splitExpressions(string(b))
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	for _, expression := range expressions {
		output, err := c.eval(expression)
		if err != nil {
			return fmt.Errorf("%s: evaluating %s: %w", filename, expression, err)
		}
		log.Printf("%s => %s", expression, output)
	}
	return nil
}

// splitExpressions breaks source into balanced top-level parenthesized expressions.
// Comments run from ';' to the end of the line.
func splitExpressions(source string) ([]string, error) {
	var expressions []string
	var current strings.Builder
	depth := 0
	inString := false
	inComment := false
	escaped := false
	for _, c := range source {
		if inComment {
			if c == '\n' {
				inComment = false
			}
			continue
		}
		if depth == 0 && !inString {
			switch c {
			case ';':
				inComment = true
				continue
			case '(':
			default:
				continue
			}
		}
		current.WriteRune(c)
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				expressions = append(expressions, current.String())
				current.Reset()
			}
		}
	}
	if depth > 0 || inString {
		return expressions, fmt.Errorf("unterminated expression: %s", current.String())
	}
	return expressions, nil
}
