package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// ResourceRegistry owns textures and materials for the program lifetime,
// keyed by tag. Grounded on ResourceManager, translated the way
// asset_manager.go translates the teacher's own cache: an explicit struct
// guarded by sync.RWMutex with hit/miss counters, instead of a
// GetInstance()-style global singleton.
type ResourceRegistry struct {
	mu        sync.RWMutex
	textures  map[string]*Texture
	materials map[string]Material

	cacheHits   int
	cacheMisses int
}

func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		textures:  make(map[string]*Texture),
		materials: make(map[string]Material),
	}
}

// LoadTexture decodes and caches the texture at path, returning the cached
// copy on a repeat call.
func (r *ResourceRegistry) LoadTexture(path string) (*Texture, error) {
	r.mu.RLock()
	if tex, ok := r.textures[path]; ok {
		r.cacheHits++
		r.mu.RUnlock()
		return tex, nil
	}
	r.mu.RUnlock()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	tex := DecodeTexture(img)

	r.mu.Lock()
	r.textures[path] = tex
	r.cacheMisses++
	r.mu.Unlock()

	return tex, nil
}

// RegisterMaterial tags a material for later lookup by mesh loaders or CLI
// plumbing.
func (r *ResourceRegistry) RegisterMaterial(tag string, material Material) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materials[tag] = material
}

// Material looks up a registered material by tag. Grounded on
// ResourceManager::GetEffect, which logs and returns nil on a miss rather
// than erroring; the caller is expected to treat a missing material as
// "nothing to draw with" rather than abort.
func (r *ResourceRegistry) Material(tag string) Material {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mat, ok := r.materials[tag]
	if !ok {
		fmt.Fprintf(os.Stderr, "resource registry: material %q does not exist\n", tag)
		return nil
	}
	return mat
}

// Texture looks up an already-loaded texture by tag/path without loading it.
func (r *ResourceRegistry) Texture(tag string) *Texture {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tex, ok := r.textures[tag]
	if !ok {
		fmt.Fprintf(os.Stderr, "resource registry: texture %q does not exist\n", tag)
		return nil
	}
	return tex
}

// Stats reports cache effectiveness, mirroring AssetManagerStats.
type ResourceRegistryStats struct {
	Textures    int
	Materials   int
	CacheHits   int
	CacheMisses int
}

func (r *ResourceRegistry) Stats() ResourceRegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ResourceRegistryStats{
		Textures:    len(r.textures),
		Materials:   len(r.materials),
		CacheHits:   r.cacheHits,
		CacheMisses: r.cacheMisses,
	}
}
