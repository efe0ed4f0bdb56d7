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

// Package store persists editor state between sessions in a bolt database:
// the history of command lines and the last cursor position in each file.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	modal "github.com/timburks/modal/pkg/types"
)

const (
	bucketCmd    = "cmd"
	bucketCursor = "cursor"
)

// ErrNoCursor is returned when no cursor position was saved for a file.
var ErrNoCursor = errors.New("no saved cursor position")

// A Store holds an open database.
type Store struct {
	db *bolt.DB
}

// NewStore opens or creates the database at path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketCmd, bucketCursor} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddCmd adds a command line to the history and returns its sequence number.
func (s *Store) AddCmd(cmd string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(cmd))
	})
	return int(seq), err
}

// Cmds returns the command history, oldest first.
func (s *Store) Cmds() ([]string, error) {
	var cmds []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCmd)).ForEach(func(k, v []byte) error {
			cmds = append(cmds, string(v))
			return nil
		})
	})
	return cmds, err
}

// PutCursor remembers the cursor position for a file.
func (s *Store) PutCursor(path string, p modal.Point) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		v := make([]byte, 16)
		binary.BigEndian.PutUint64(v[0:8], uint64(p.Row))
		binary.BigEndian.PutUint64(v[8:16], uint64(p.Col))
		return tx.Bucket([]byte(bucketCursor)).Put([]byte(path), v)
	})
}

// Cursor returns the cursor position saved for a file.
func (s *Store) Cursor(path string) (modal.Point, error) {
	var p modal.Point
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketCursor)).Get([]byte(path))
		if len(v) != 16 {
			return ErrNoCursor
		}
		p.Row = int(binary.BigEndian.Uint64(v[0:8]))
		p.Col = int(binary.BigEndian.Uint64(v[8:16]))
		return nil
	})
	return p, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
