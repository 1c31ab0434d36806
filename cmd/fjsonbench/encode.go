// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fracturedjson/fjson"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

func newEncodeCmd() *cobra.Command {
	var (
		globalTablePath string
		compress        bool
		level           int
		snappyFlag      bool
		out             string
	)
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a JSON document to the fjson binary format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := jsonvalue.Parse(data)
			if err != nil {
				return err
			}

			var opts []fjson.Option
			if globalTablePath != "" {
				table, err := os.ReadFile(globalTablePath)
				if err != nil {
					return err
				}
				opts = append(opts, fjson.WithGlobalTable(table))
			}
			if compress {
				opts = append(opts, fjson.WithCompression(level))
			}
			if snappyFlag {
				opts = append(opts, fjson.WithCompressor(fjson.CompressorSnappy))
			}

			encoded, err := fjson.Encode(v, opts...)
			if err != nil {
				return err
			}
			return writeOutput(out, encoded)
		},
	}
	cmd.Flags().StringVar(&globalTablePath, "global-table", "", "path to a serialized global keys table")
	cmd.Flags().BoolVar(&compress, "compress", false, "enable block compression")
	cmd.Flags().IntVar(&level, "level", 0, "compression level")
	cmd.Flags().BoolVar(&snappyFlag, "snappy", false, "use snappy instead of zstd")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: stdout)")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var globalTablePath string
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode an fjson binary document and print its JSON text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			var opts []fjson.Option
			if globalTablePath != "" {
				table, err := os.ReadFile(globalTablePath)
				if err != nil {
					return err
				}
				opts = append(opts, fjson.WithGlobalTable(table))
			}

			v, err := fjson.Decode(data, opts...)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(jsonvalue.Text(v) + "\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&globalTablePath, "global-table", "", "path to a serialized global keys table")
	return cmd
}

func newBuildTableCmd() *cobra.Command {
	var (
		maxCount int
		cutoff   int
		out      string
	)
	cmd := &cobra.Command{
		Use:   "build-table [file]",
		Short: "Build a global keys table from a JSON document's key frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := jsonvalue.Parse(data)
			if err != nil {
				return err
			}
			table, err := fjson.BuildGlobalTableFromJSON(v, maxCount, cutoff)
			if err != nil {
				return err
			}
			return writeOutput(out, table)
		},
	}
	cmd.Flags().IntVar(&maxCount, "max-count", 0, "maximum number of keys to include (0 = unlimited)")
	cmd.Flags().IntVar(&cutoff, "cutoff", 0, "minimum occurrence count to include a key (0 = unlimited)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: stdout)")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
