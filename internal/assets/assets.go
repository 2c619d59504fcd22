// Package assets handles model file lookup, caching and decoding.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// MeshConverter decodes one model file format into a renderer-ready mesh.
type MeshConverter interface {
	// Extensions lists the file extensions the converter handles,
	// lowercase and without the dot.
	Extensions() []string
	// Convert decodes raw file bytes into a mesh with the requested
	// topology.
	Convert(data []byte, topo mesh.Topology) (*mesh.Mesh, error)
}

// Manager resolves model files across search roots and decodes them
// through registered converters.
type Manager struct {
	roots      []string
	cache      *Cache
	converters map[string]MeshConverter
	mu         sync.RWMutex
}

// NewManager creates a new asset manager with the built-in COLLADA
// converter registered.
func NewManager() *Manager {
	m := &Manager{
		cache:      NewCache(),
		converters: make(map[string]MeshConverter),
	}
	m.Register(daeConverter{})
	return m
}

// AddRoot adds a directory to the model search path.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("adding search root %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("search root %s is not a directory", path)
	}

	m.mu.Lock()
	m.roots = append(m.roots, path)
	m.mu.Unlock()

	return nil
}

// Register routes the converter's extensions to it. A later registration
// replaces an earlier one for the same extension.
func (m *Manager) Register(c MeshConverter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ext := range c.Extensions() {
		m.converters[normalizeExt(ext)] = c
	}
}

// Extensions returns the registered file extensions, sorted.
func (m *Manager) Extensions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	exts := make([]string, 0, len(m.converters))
	for ext := range m.converters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Read loads a file from the search roots.
func (m *Manager) Read(path string) ([]byte, error) {
	// Check cache first
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// Search roots in reverse order
	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(m.roots[i], path))
		if err == nil {
			m.cache.Set(path, data)
			return data, nil
		}
	}

	// Fall back to the path as given; absolute paths land here.
	if data, err := os.ReadFile(path); err == nil {
		m.cache.Set(path, data)
		return data, nil
	}

	return nil, fmt.Errorf("file not found: %s", path)
}

// LoadMesh reads a model file and decodes it with the converter
// registered for its extension.
func (m *Manager) LoadMesh(path string, topo mesh.Topology) (*mesh.Mesh, error) {
	ext := normalizeExt(filepath.Ext(path))

	m.mu.RLock()
	conv, ok := m.converters[ext]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no converter registered for %q files", ext)
	}

	data, err := m.Read(path)
	if err != nil {
		return nil, err
	}

	msh, err := conv.Convert(data, topo)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", path, err)
	}
	return msh, nil
}

// CacheStats reports cache hits and misses since the last clear.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// ClearCache drops all cached file contents.
func (m *Manager) ClearCache() {
	m.cache.Clear()
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Cache is a simple in-memory cache for loaded files.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
