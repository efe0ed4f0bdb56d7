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

package pairs

import "testing"

func TestCloser(t *testing.T) {
	for open, want := range map[rune]rune{'(': ')', '{': '}', '[': ']', '"': '"', '\'': '\''} {
		if c, ok := Closer(open); !ok || c != want {
			t.Errorf("Unexpected closer for %q: %q %v", open, c, ok)
		}
	}
	if _, ok := Closer('a'); ok {
		t.Errorf("Letters should not have closers")
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		c    rune
		line string
		col  int
		want Decision
	}{
		{"plain letter", 'a', "", 0, Insert},
		{"open paren", '(', "hello", 5, InsertPair},
		{"open brace before text", '{', "x", 0, InsertPair},
		{"close paren type-over", ')', "hello()", 6, TypeOver},
		{"close paren elsewhere", ')', "hello(x", 7, Insert},
		{"quote type-through", '"', "\"\"", 1, TypeOver},
		{"quote before other quote", '"', "''", 1, InsertPair},
		{"single quote pairs", '\'', "it", 2, InsertPair},
		{"bracket before bracket", '[', "[]", 1, InsertPair},
		{"close bracket type-over", ']', "[]", 1, TypeOver},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Decide(test.c, []rune(test.line), test.col); got != test.want {
				t.Errorf("Decide(%q, %q, %d) = %v, want %v", test.c, test.line, test.col, got, test.want)
			}
		})
	}
}
