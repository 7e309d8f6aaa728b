package viz

import (
	"bytes"
	"encoding/gob"
	"io"
	"sync"
)

// The gob hooks on Base have no way to receive a store argument, so the
// store driving a Dump or Load is published here for the duration of the
// call. codecMu serializes codec use across all stores and guards the
// saving, loading and loadOffset fields of the active store.
var (
	codecMu     sync.Mutex
	activeCodec *Store
)

// payload wraps the dumped value so interface types survive gob.
type payload struct {
	Value any
}

// Dump writes the object to w in gob form. Custom trees attached to the
// store travel with the elements they stamp, so a Load on another store
// restores both data and per-object styling.
func (s *Store) Dump(obj any, w io.Writer) error {
	codecMu.Lock()
	defer codecMu.Unlock()
	activeCodec = s
	s.saving = true
	defer func() {
		s.saving = false
		activeCodec = nil
	}()
	return gob.NewEncoder(w).Encode(payload{Value: obj})
}

// Dumps returns the object in gob form as a byte slice.
func (s *Store) Dumps(obj any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Dump(obj, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads an object dumped by Dump. Custom tree ids are remapped past
// the store's highest issued id, so loaded objects never collide with
// trees already registered.
func (s *Store) Load(r io.Reader) (any, error) {
	codecMu.Lock()
	defer codecMu.Unlock()
	activeCodec = s
	s.loading = true
	s.loadOffset = s.maxCustomID()
	defer func() {
		s.loading = false
		s.loadOffset = 0
		activeCodec = nil
	}()
	var p payload
	if err := gob.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	return p.Value, nil
}

// Loads reads an object dumped by Dumps.
func (s *Store) Loads(data []byte) (any, error) {
	return s.Load(bytes.NewReader(data))
}
