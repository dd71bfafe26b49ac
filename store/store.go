package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Keys under which the models persist their state. Kept identical to the
// localStorage keys of the original page so exported data stays recognizable.
const (
	CartKey       = "cafeteria_yv_cart"
	MenuKey       = "cafeteria_yv_menu"
	CategoriesKey = "cafeteria_yv_categories"
)

// Store is a JSON key/value store over plain files in a local data directory.
// It is fail-soft on both ends: a missing or unreadable value reads as absent,
// and a failed write is swallowed so the in-memory state stays authoritative.
type Store struct {
	dir string
}

func New(dir string) *Store {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		log.Printf("Store: cannot create data directory %s: %v", dir, err)
	}
	return &Store{dir: dir}
}

// Load reads the value persisted under key into v. It reports false on a
// missing key, malformed JSON, or any decode error; it never fails loudly.
func (s *Store) Load(key string, v interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// Save serializes v under key. Write failures are logged and swallowed.
func (s *Store) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Store: cannot serialize %s: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		log.Printf("Store: cannot write %s: %v", key, err)
	}
}

// Clear removes the value persisted under key, if any.
func (s *Store) Clear(key string) {
	os.Remove(s.path(key))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
