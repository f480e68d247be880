package artifact

import "sync"

// Store provides thread-safe caching of loaded artifacts to avoid redundant
// disk reads when a host reloads the same source.
//
// Cached artifacts remain in memory until explicitly removed via Evict() or
// Clear(). Resetting a session should Clear() the store so a long-running
// server does not accumulate decoded bitmaps.
type Store struct {
	mu     sync.RWMutex
	images map[string]*Image
	texts  map[string]*Text
}

// NewStore creates an empty artifact store, ready for concurrent use.
func NewStore() *Store {
	return &Store{
		images: make(map[string]*Image),
		texts:  make(map[string]*Text),
	}
}

// LoadImage retrieves an image artifact from the cache or loads it from disk
// if not cached. The artifact is cached using the exact path string provided.
func (s *Store) LoadImage(path string) (*Image, error) {
	s.mu.RLock()
	if art, ok := s.images[path]; ok {
		s.mu.RUnlock()
		return art, nil
	}
	s.mu.RUnlock()

	art, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.images[path] = art
	s.mu.Unlock()

	return art, nil
}

// LoadText retrieves a text artifact from the cache or loads it from disk if
// not cached.
func (s *Store) LoadText(path string) (*Text, error) {
	s.mu.RLock()
	if art, ok := s.texts[path]; ok {
		s.mu.RUnlock()
		return art, nil
	}
	s.mu.RUnlock()

	art, err := LoadText(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.texts[path] = art
	s.mu.Unlock()

	return art, nil
}

// Evict removes a specific artifact from the cache by its path. Unknown
// paths are a no-op.
func (s *Store) Evict(path string) {
	s.mu.Lock()
	delete(s.images, path)
	delete(s.texts, path)
	s.mu.Unlock()
}

// Clear removes all cached artifacts, freeing the associated memory.
func (s *Store) Clear() {
	s.mu.Lock()
	s.images = make(map[string]*Image)
	s.texts = make(map[string]*Text)
	s.mu.Unlock()
}
