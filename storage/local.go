package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/themer-cli/themer/filesystem"
	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/where"
)

// watchSettle is how long the file must stay unchanged before Watch reports it.
const watchSettle = 50 * time.Millisecond

// ErrWatchUnsupported is returned by Watch when the filesystem backend is not the OS.
var ErrWatchUnsupported = errors.New("watching requires the OS filesystem")

// Local keeps every key in one JSON document on disk, the way a browser
// keeps localStorage for an origin.
type Local struct {
	path string

	mu     sync.Mutex
	cacher *gache.Cache[map[string]string]
}

// NewLocal opens the slot file resolved by where.Storage.
func NewLocal() *Local {
	return NewLocalAt(where.Storage())
}

// NewLocalAt opens a slot file at an explicit path.
func NewLocalAt(path string) *Local {
	l := &Local{path: filepath.Clean(path)}
	l.reload()
	return l
}

func (l *Local) Name() string { return BackendLocal }

// Path returns the backing file.
func (l *Local) Path() string { return l.path }

// reload drops the in-memory copy so the next read comes from disk.
func (l *Local) reload() {
	l.cacher = gache.New[map[string]string](&gache.Options{
		Path:       l.path,
		FileSystem: &filesystem.GacheFs{},
	})
}

func (l *Local) read() (map[string]string, error) {
	values, _, err := l.cacher.Get()
	if err != nil {
		return nil, err
	}
	if values == nil {
		return make(map[string]string), nil
	}
	return values, nil
}

func (l *Local) Get(key string) (mo.Option[string], error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	values, err := l.read()
	if err != nil {
		return mo.None[string](), err
	}

	if v, ok := values[key]; ok {
		return mo.Some(v), nil
	}
	return mo.None[string](), nil
}

func (l *Local) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	values, err := l.read()
	if err != nil {
		// A corrupt document must not block new writes.
		log.WithError(err).WithField("path", l.path).Warn("discarding unreadable storage file")
		values = make(map[string]string)
	}

	updated := lo.Assign(values, map[string]string{key: value})
	return l.cacher.Set(updated)
}

func (l *Local) Delete(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	values, err := l.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}

	return l.cacher.Set(lo.OmitByKeys(values, []string{key}))
}

// Watch calls onChange whenever the backing file is written, created or
// replaced, including by other processes. The in-memory copy is dropped
// before onChange runs. Watching stops when ctx is done.
func (l *Local) Watch(ctx context.Context, onChange func()) error {
	if !filesystem.IsOs() {
		return ErrWatchUnsupported
	}

	dir := filepath.Dir(l.path)
	if err := filesystem.API().MkdirAll(dir, 0o755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		// Writers truncate before writing, so events are coalesced until
		// the file has been quiet for watchSettle.
		var settled <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != l.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				settled = time.After(watchSettle)
			case <-settled:
				settled = nil

				l.mu.Lock()
				l.reload()
				l.mu.Unlock()

				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).WithField("path", l.path).Warn("storage watcher error")
			}
		}
	}()

	return nil
}
