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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/timburks/modal/pkg/commander"
	"github.com/timburks/modal/pkg/config"
	"github.com/timburks/modal/pkg/editor"
	"github.com/timburks/modal/pkg/screen"
	"github.com/timburks/modal/pkg/store"
	modal "github.com/timburks/modal/pkg/types"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "modal: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	filenames := make([]string, 0)
	var script string
	configPath := config.DefaultPath()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // eval program
			i++
			if i >= len(args) {
				return errors.New("no file specified for --eval option")
			}
			script = args[i]
		case "--config":
			i++
			if i >= len(args) {
				return errors.New("no file specified for --config option")
			}
			configPath = args[i]
		default:
			filenames = append(filenames, args[i])
		}
	}
	if len(filenames) > 1 {
		return errors.New("only one file can be edited at a time")
	}
	if script == "" && !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("standard input is not a terminal")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	// Open a log file.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(f)
		defer func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}()
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(cfg.EditorOptions())

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, mode)
	c.SetSaver(commander.SaverFunc(func(path string, text string) error {
		return os.WriteFile(path, []byte(text), 0644)
	}))

	var filename string
	if len(filenames) == 1 {
		filename = filenames[0]
		b, err := os.ReadFile(filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		// a missing file is created on the first save
		e.Load(string(b))
		e.SetFileName(filename)
	}

	var history *store.Store
	if cfg.HistoryDB != "" {
		history, err = store.NewStore(cfg.HistoryDB)
		if err != nil {
			log.Printf("command history is unavailable: %+v", err)
		} else {
			defer history.Close()
			c.SetCommandHistory(history)
			if filename != "" {
				if p, err := history.Cursor(filename); err == nil {
					e.SetCursor(p)
				}
			}
		}
	}

	if script != "" {
		// Run a script and exit.
		return c.ParseEvalFile(script)
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	eventLoop(c, s)

	if history != nil && filename != "" {
		if err = history.PutCursor(filename, e.GetCursor()); err != nil {
			log.Printf("saving cursor position: %+v", err)
		}
	}
	return nil
}

// A display shows snapshots and supplies key events.
type display interface {
	Render(snapshot modal.Snapshot)
	GetNextEvent() *modal.Event
}

// eventLoop runs until the commander quits. Errors are shown on the message bar
// and logged by the commander, so they are not handled here.
func eventLoop(c *commander.Commander, d display) {
	for c.IsRunning() {
		d.Render(c.Snapshot())
		c.ProcessEvent(d.GetNextEvent())
	}
}
