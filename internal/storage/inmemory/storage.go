// Package inmemory provides functionality for dumping/retrieving pairs of URL and sURL to/from local
// storage implemented as a map.
package inmemory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.URLStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu  sync.RWMutex
	DB  map[string]string
	log zerolog.Logger
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(logger zerolog.Logger) *Storage {
	return &Storage{
		DB:  make(map[string]string),
		log: logger,
	}
}

// Retrieve returns a URL as a value of a map based on the given sURL as a key of a map.
func (s *Storage) Retrieve(ctx context.Context, sURL string) (URL string, err error) {
	if err := ctx.Err(); err != nil {
		return "", storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.RLock()
	URL, ok := s.DB[sURL]
	s.mu.RUnlock()
	if !ok {
		s.log.Debug().Str("slug", sURL).Msg("retrieving URL: not found")
		return "", storageErrors.StorageNotFoundError{ID: sURL}
	}
	s.log.Debug().Str("slug", sURL).Str("url", URL).Msg("retrieving URL")
	return URL, nil
}

// Dump stores a pair of sURL and URL as a key-value pair in a map.
func (s *Storage) Dump(ctx context.Context, URL string, sURL string) error {
	if err := ctx.Err(); err != nil {
		return storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.DB[sURL]; ok {
		return storageErrors.StorageAlreadyExistsError{ID: sURL}
	}
	s.DB[sURL] = URL
	s.log.Debug().Str("slug", sURL).Str("url", URL).Msg("dumping URL")
	return nil
}
