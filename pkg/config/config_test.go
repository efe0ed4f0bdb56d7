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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timburks/modal/pkg/editor"
	modal "github.com/timburks/modal/pkg/types"
)

func write(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modal.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	mode, err := c.Mode()
	if err != nil || mode != modal.ModeCommand {
		t.Errorf("Unexpected start mode: %s %+v", mode, err)
	}
	if diff := cmp.Diff(editor.DefaultOptions(), c.EditorOptions()); diff != "" {
		t.Errorf("Unexpected options (-want +got):\n%s", diff)
	}
	if c.LogFile == "" {
		t.Errorf("Expected a default log file")
	}
}

func TestLoad(t *testing.T) {
	path := write(t, "start-mode: insert\nauto-pair: false\ntab-width: 8\nundo-limit: 50\nhistory-db: \"\"\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	mode, _ := c.Mode()
	if mode != modal.ModeInsert {
		t.Errorf("Unexpected start mode: %s", mode)
	}
	want := editor.Options{AutoPair: false, TabWidth: 8, UndoLimit: 50}
	if diff := cmp.Diff(want, c.EditorOptions()); diff != "" {
		t.Errorf("Unexpected options (-want +got):\n%s", diff)
	}
	if c.HistoryDB != "" {
		t.Errorf("Expected history to be disabled: %q", c.HistoryDB)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	c, err := Load(write(t, "undo-limit: 10\n"))
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	options := c.EditorOptions()
	if !options.AutoPair || options.TabWidth != 4 || options.UndoLimit != 10 {
		t.Errorf("Unexpected options: %+v", options)
	}
}

func TestInvalidFiles(t *testing.T) {
	for _, text := range []string{
		"start-mode: visual\n",
		"undo-limit: -1\n",
		"tab-width: [4]\n",
	} {
		if _, err := Load(write(t, text)); err == nil {
			t.Errorf("Expected an error for %q", text)
		}
	}
}
