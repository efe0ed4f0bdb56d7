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

package types

type Key int

// Keys that are not plain characters. A character key has Key == 0 and Ch set.
const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyEsc
	KeyTab
	KeyCtrlSave
	KeyCtrlCopy
	KeyCtrlPaste
	KeyCtrlUndo
	KeyCtrlRedo
	KeyQuit
	KeyUnsupported
)

type Event struct {
	Key Key
	Ch  rune
}

// CharEvent returns the event for typing c.
func CharEvent(c rune) *Event {
	return &Event{Ch: c}
}

// KeyEvent returns the event for pressing k.
func KeyEvent(k Key) *Event {
	return &Event{Key: k}
}
