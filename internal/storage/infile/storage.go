// Package infile provides a map-backed storage that appends every new pair to a JSON lines file
// and restores the map from it on start.
package infile

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.URLStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu      sync.RWMutex
	DB      map[string]string
	path    string
	encoder *json.Encoder
	log     zerolog.Logger
}

// InitStorage restores the storage from path and keeps the file open for appending until ctx is
// canceled. wg is released once the file is closed.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, path string, logger zerolog.Logger) (*Storage, error) {
	st := &Storage{
		DB:   make(map[string]string),
		path: path,
		log:  logger,
	}
	if err := st.restore(); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	st.encoder = json.NewEncoder(file)
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		st.mu.Lock()
		defer st.mu.Unlock()
		if err := file.Close(); err != nil {
			st.log.Error().Err(err).Msg("file storage was not closed")
			return
		}
		st.encoder = nil
		st.log.Info().Str("path", path).Msg("file storage closed successfully")
	}()
	return st, nil
}

// Retrieve returns a URL corresponding to sURL.
func (s *Storage) Retrieve(ctx context.Context, sURL string) (URL string, err error) {
	if err := ctx.Err(); err != nil {
		return "", storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.RLock()
	URL, ok := s.DB[sURL]
	s.mu.RUnlock()
	if !ok {
		return "", storageErrors.StorageNotFoundError{ID: sURL}
	}
	return URL, nil
}

// Dump stores a pair of sURL and URL in the map and appends it to the file.
func (s *Storage) Dump(ctx context.Context, URL string, sURL string) error {
	if err := ctx.Err(); err != nil {
		return storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.DB[sURL]; ok {
		return storageErrors.StorageAlreadyExistsError{ID: sURL}
	}
	if s.encoder == nil {
		return storageErrors.StorageFileWriteError{Err: os.ErrClosed}
	}
	if err := s.encoder.Encode(modelstorage.URLStorageEntry{SURL: sURL, URL: URL}); err != nil {
		return storageErrors.StorageFileWriteError{Err: err}
	}
	s.DB[sURL] = URL
	s.log.Debug().Str("slug", sURL).Str("url", URL).Msg("dumping URL")
	return nil
}

// restore fills the map with entries from the file storage.
func (s *Storage) restore() error {
	file, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry modelstorage.URLStorageEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return err
		}
		s.DB[entry.SURL] = entry.URL
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	s.log.Info().Str("path", s.path).Int("entries", len(s.DB)).Msg("file storage restored")
	return nil
}
