// Package shortener provides functionality for creating a short unique identifier for a URL.
package shortener

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/speps/go-hashids/v2"

	serviceErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/service/shortener"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/storage/errors"
)

const SaltKey = "Some Hashing Key"
const MinLength = 5

// MaxSlugAttempts bounds how many taken slugs Encode skips before giving up.
const MaxSlugAttempts = 1 << 16

// Check interface implementation explicitly
var (
	_ shortener.Processor = (*Shortener)(nil)
)

// Shortener struct defines data structure handling and provides support for adding new implementations.
type Shortener struct {
	SaltKey    string
	MinLength  int
	hashID     *hashids.HashID
	counter    atomic.Int64
	URLStorage storage.URLStorage
}

// InitShortener initializes a Shortener object and sets its attributes.
func InitShortener(s storage.URLStorage) (*Shortener, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	hd := hashids.NewData()
	hd.Salt = SaltKey
	hd.MinLength = MinLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, &serviceErrors.ServiceInitHashError{Msg: err.Error()}
	}
	short := &Shortener{
		SaltKey:    SaltKey,
		MinLength:  MinLength,
		hashID:     hashID,
		URLStorage: s,
	}
	short.counter.Store(time.Now().Unix())
	return short, nil
}

// Encode normalizes URL, generates a sURL, stores the pair and returns sURL.
// Slugs already present in the storage, e.g. issued by a previous run over the same file, are
// skipped.
func (short *Shortener) Encode(ctx context.Context, URL string) (sURL string, err error) {
	URL, err = Normalize(URL)
	if err != nil {
		return "", err
	}
	for attempt := 1; ; attempt++ {
		sURL, err = short.generateSlug()
		if err != nil {
			return "", &serviceErrors.ServiceEncodingHashError{Msg: err.Error()}
		}
		err = short.URLStorage.Dump(ctx, URL, sURL)
		var existsErr storageErrors.StorageAlreadyExistsError
		if errors.As(err, &existsErr) && attempt < MaxSlugAttempts {
			continue
		}
		if err != nil {
			return "", err
		}
		return sURL, nil
	}
}

// Decode retrieves and returns URL based on the given sURL as a key.
func (short *Shortener) Decode(ctx context.Context, sURL string) (URL string, err error) {
	URL, err = short.URLStorage.Retrieve(ctx, sURL)
	if err != nil {
		return "", err
	}
	return URL, nil
}

// Normalize trims URL, prefixes https:// when no scheme is given and checks that the result is
// an absolute http(s) URL with a host.
func Normalize(URL string) (string, error) {
	URL = strings.TrimSpace(URL)
	if URL == "" {
		return "", &serviceErrors.ServiceIncorrectInputURL{Msg: "url is required"}
	}
	if !strings.Contains(URL, "://") {
		URL = "https://" + URL
	}
	u, err := url.ParseRequestURI(URL)
	if err != nil {
		return "", &serviceErrors.ServiceIncorrectInputURL{Msg: "invalid URL"}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &serviceErrors.ServiceIncorrectInputURL{Msg: "invalid URL"}
	}
	return u.String(), nil
}

// generateSlug generates and returns a short unique identifier.
func (short *Shortener) generateSlug() (slug string, err error) {
	return short.hashID.Encode([]int{int(short.counter.Add(1))})
}
