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

// Package operations wraps buffer edits into undoable units.
// Operations are created by the editor and performed against a buffer.
// To support undo and redo, performing an operation returns another
// operation that can be performed as its inverse. Operations are plain
// values: performing one never changes it, so the same operation can be
// performed again to redo it.
package operations
