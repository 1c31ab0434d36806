// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

// corpusFile is one JSON document discovered under a corpus directory.
type corpusFile struct {
	path string
	data []byte
	// fingerprint identifies this file's exact contents, so repeat bench
	// runs over an unchanged corpus can be recognized as such by callers
	// that cache results keyed on it.
	fingerprint uint64
}

// loadCorpus walks dir for *.json files and reads each one, in parallel,
// using one goroutine per file bounded by the errgroup's default
// unlimited concurrency capped by the number of discovered files. A
// read failure for one file aborts the whole load.
func loadCorpus(ctx context.Context, dir string) ([]corpusFile, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]corpusFile, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files[i] = corpusFile{
				path:        path,
				data:        data,
				fingerprint: xxhash.Sum64(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// parseCorpus parses every file's JSON text into a Value, again fanning
// out across goroutines.
func parseCorpus(ctx context.Context, files []corpusFile) ([]jsonvalue.Value, error) {
	values := make([]jsonvalue.Value, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			v, err := jsonvalue.Parse(f.data)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
