// Package catalog tracks the set of module names the panel may queue.
// Each payload file in the modules directory contributes one name (its
// basename without extension), mirroring how payloads are shipped to
// beacons by the dispatch path.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"beacon-guard/backend/global"

	"github.com/fsnotify/fsnotify"
)

type Catalog struct {
	dir     string
	mu      sync.RWMutex
	names   map[string]struct{}
	watcher *fsnotify.Watcher

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New scans dir and returns a catalog of the module names found there.
// A missing directory is not fatal: the catalog starts empty.
func New(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir, names: make(map[string]struct{}), stop: make(chan struct{})}
	if err := c.reload(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		global.Logger.Warn().Str("dir", dir).Msg("modules directory missing, catalog starts empty")
	}
	return c, nil
}

// Watch starts reloading the catalog whenever the modules directory
// changes. Call Close to stop.
func (c *Catalog) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return err
	}
	c.watcher = watcher
	c.wg.Add(1)
	go c.loop()
	return nil
}

func (c *Catalog) loop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.stop:
			return
		case _, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if err := c.reload(); err != nil {
				global.Logger.Error().Err(err).Str("dir", c.dir).Msg("module catalog reload failed")
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			global.Logger.Error().Err(err).Msg("module catalog watcher error")
		}
	}
}

func (c *Catalog) reload() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
		if name != "" {
			names[name] = struct{}{}
		}
	}
	c.mu.Lock()
	c.names = names
	c.mu.Unlock()
	global.Logger.Debug().Int("modules", len(names)).Str("dir", c.dir).Msg("module catalog loaded")
	return nil
}

// Has reports whether name is a known module.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	_, ok := c.names[name]
	c.mu.RUnlock()
	return ok
}

// Names returns the known module names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.names))
	for n := range c.names {
		out = append(out, n)
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (c *Catalog) Close() {
	c.once.Do(func() {
		close(c.stop)
		if c.watcher != nil {
			c.watcher.Close()
		}
	})
	c.wg.Wait()
}
