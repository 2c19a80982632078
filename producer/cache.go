package producer

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultCacheDir is where cache steps write when no "dir" kwarg is given.
const DefaultCacheDir = ".cache/objects"

// DumpCache is a step that writes the current object to a cache file and
// passes it through unchanged, so an expensive prefix of a section's steps
// can be skipped on later runs (pair with LoadCache).
//
// Kwargs: "dir" (cache directory, created if missing; default
// DefaultCacheDir), "prefix" (file name stem; default the producer's oid),
// "codec" ("gob" or "json"; default "gob"). The object must be encodable by
// the chosen codec.
func (b Base) DumpCache(ctx context.Context, obj interface{}, kw Kwargs) (interface{}, error) {
	path, codec, err := b.cachePath(kw)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("dump cache: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("dump cache: %w", err)
	}
	defer f.Close()
	switch codec {
	case "gob":
		err = gob.NewEncoder(f).Encode(&obj)
	case "json":
		err = json.NewEncoder(f).Encode(obj)
	}
	if err != nil {
		return nil, fmt.Errorf("dump cache %s: %w", path, err)
	}
	b.Log().Info("cache updated", "oid", b.OID, "path", path)
	return obj, nil
}

// LoadCache is a step that replaces the current object with the contents of
// a cache file written by DumpCache. The incoming object is ignored. Kwargs
// are the same as DumpCache's.
func (b Base) LoadCache(ctx context.Context, obj interface{}, kw Kwargs) (interface{}, error) {
	path, codec, err := b.cachePath(kw)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load cache: %w", err)
	}
	defer f.Close()
	var out interface{}
	switch codec {
	case "gob":
		err = gob.NewDecoder(f).Decode(&out)
	case "json":
		err = json.NewDecoder(f).Decode(&out)
	}
	if err != nil {
		return nil, fmt.Errorf("load cache %s: %w", path, err)
	}
	b.Log().Info("cache used", "oid", b.OID, "path", path)
	return out, nil
}

func (b Base) cachePath(kw Kwargs) (path, codec string, err error) {
	dir := DefaultCacheDir
	if v, ok := kw["dir"].(string); ok && v != "" {
		dir = v
	}
	prefix := b.OID
	if v, ok := kw["prefix"].(string); ok && v != "" {
		prefix = v
	}
	codec = "gob"
	if v, ok := kw["codec"].(string); ok && v != "" {
		codec = v
	}
	if codec != "gob" && codec != "json" {
		return "", "", fmt.Errorf("cache: codec %q not supported (use \"gob\" or \"json\")", codec)
	}
	return filepath.Join(dir, prefix+"."+codec), codec, nil
}
