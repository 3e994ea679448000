package geocode

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/logging"
)

// Cache wraps a Resolver and memoizes definitive outcomes by normalized
// (country, city) key. Transient lookup errors are never cached, so the next
// pass retries them. The cache can be persisted to a YAML file to bound
// external call volume across runs; persistence is best-effort and a missing
// or corrupt cache file is ignored.
type Cache struct {
	mu       sync.Mutex
	resolver Resolver
	entries  map[string]Result
}

// NewCache creates a cache around the given resolver.
func NewCache(resolver Resolver) *Cache {
	return &Cache{
		resolver: resolver,
		entries:  make(map[string]Result),
	}
}

// Resolve returns the cached outcome for the pair if present, otherwise
// delegates to the wrapped resolver and caches any definitive result.
func (c *Cache) Resolve(ctx context.Context, country, city string) (Result, error) {
	key := Key(country, city)

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok {
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().
			Str("city", city).
			Str("status", string(cached.Status)).
			Msg("Geocode cache hit")
		return cached, nil
	}
	c.mu.Unlock()

	result, err := c.resolver.Resolve(ctx, country, city)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	c.entries[key] = result
	c.mu.Unlock()
	return result, nil
}

// cacheFile is the on-disk shape of a persisted cache.
type cacheFile struct {
	Entries map[string]Result `yaml:"entries"`
}

// Load merges a persisted cache file into the cache. A missing file is not
// an error.
func (c *Cache) Load(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var file cacheFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		// A corrupt cache file only costs re-lookups.
		logging.Warn().Err(err).Str("path", path).Msg("Ignoring corrupt geocode cache")
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, result := range file.Entries {
		if _, ok := c.entries[key]; !ok {
			c.entries[key] = result
		}
	}
	return nil
}

// Save writes the cache to a YAML file for reuse by later runs.
func (c *Cache) Save(fs afero.Fs, path string) error {
	c.mu.Lock()
	file := cacheFile{Entries: make(map[string]Result, len(c.entries))}
	for key, result := range c.entries {
		file.Entries[key] = result
	}
	c.mu.Unlock()

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, constants.FilePermissions)
}

// Len returns the number of cached outcomes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
