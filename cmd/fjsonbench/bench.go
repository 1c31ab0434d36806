// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"time"

	ddzstd "github.com/DataDog/zstd"
	"github.com/spf13/cobra"

	"github.com/fracturedjson/fjson"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

func newBenchCmd() *cobra.Command {
	var (
		globalTablePath string
		level           int
	)
	cmd := &cobra.Command{
		Use:   "bench <corpus-dir>",
		Short: "Benchmark encode/decode across compressors over a corpus of *.json files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			files, err := loadCorpus(ctx, args[0])
			if err != nil {
				return err
			}
			values, err := parseCorpus(ctx, files)
			if err != nil {
				return err
			}

			var globalTable []byte
			if globalTablePath != "" {
				// Build one shared global table from the whole corpus so
				// every document's encode/decode pair uses the same
				// side-channel table.
				var all jsonvalue.Value = &jsonvalue.Array{Items: values}
				globalTable, err = fjson.BuildGlobalTableFromJSON(all, 0, 2)
				if err != nil {
					return err
				}
			}

			reports := []*report{
				runReport("none", files, values, fjson.CompressorZstd, false, level, globalTable),
				runReport("zstd", files, values, fjson.CompressorZstd, true, level, globalTable),
				runReport("snappy", files, values, fjson.CompressorSnappy, true, level, globalTable),
				runDataDogBaseline("datadog-zstd-cgo", files, level),
			}

			writeSummaryTable(cmd.OutOrStdout(), reports)
			plotRatios(cmd.OutOrStdout(), reports)
			return nil
		},
	}
	cmd.Flags().StringVar(&globalTablePath, "global-table", "", "build and share one global keys table across the corpus")
	cmd.Flags().IntVar(&level, "level", 3, "compression level")
	return cmd
}

func runReport(label string, files []corpusFile, values []jsonvalue.Value, compressor fjson.CompressorKind, compress bool, level int, globalTable []byte) *report {
	r := newReport(label)
	for i, v := range values {
		opts := []fjson.Option{fjson.WithCompressor(compressor)}
		if compress {
			opts = append(opts, fjson.WithCompression(level))
		}
		if globalTable != nil {
			opts = append(opts, fjson.WithGlobalTable(globalTable))
		}

		start := time.Now()
		encoded, err := fjson.Encode(v, opts...)
		encodeTime := time.Since(start)
		if err != nil {
			continue
		}

		start = time.Now()
		_, err = fjson.Decode(encoded, opts...)
		decodeTime := time.Since(start)
		if err != nil {
			continue
		}

		r.add(fileResult{
			path:         files[i].path,
			jsonBytes:    len(files[i].data),
			encodedBytes: len(encoded),
			encodeTime:   encodeTime,
			decodeTime:   decodeTime,
		})
	}
	return r
}

// runDataDogBaseline compresses each file's raw JSON text (not the fjson
// binary payload) with the cgo zstd binding, purely as an external
// reference point alongside this package's own pure-Go compressors.
func runDataDogBaseline(label string, files []corpusFile, level int) *report {
	r := newReport(label)
	for _, f := range files {
		start := time.Now()
		compressed, err := ddzstd.CompressLevel(nil, f.data, level)
		encodeTime := time.Since(start)
		if err != nil {
			continue
		}

		start = time.Now()
		_, err = ddzstd.Decompress(nil, compressed)
		decodeTime := time.Since(start)
		if err != nil {
			continue
		}

		r.add(fileResult{
			path:         f.path,
			jsonBytes:    len(f.data),
			encodedBytes: len(compressed),
			encodeTime:   encodeTime,
			decodeTime:   decodeTime,
		})
	}
	return r
}
