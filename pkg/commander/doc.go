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

// Package commander converts key events into commands for the editor.
// It is the modal state machine of modal: in insert mode keys edit text,
// in command mode keys move, copy, paste, undo and open the command line.
// Quitting with unsaved changes asks for confirmation first.
// Command lines that start with a parenthesis are evaluated as lisp.
package commander
