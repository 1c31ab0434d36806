// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

// fileResult is one corpus file's outcome under a single compressor.
type fileResult struct {
	path         string
	jsonBytes    int
	encodedBytes int
	encodeTime   time.Duration
	decodeTime   time.Duration
}

// report aggregates fileResults across an entire corpus for one compressor
// label, tracking latency distributions with an HDR histogram (values in
// nanoseconds, three significant figures, matching the teacher's own
// latency-reporting precision).
type report struct {
	label       string
	results     []fileResult
	encodeHisto *hdrhistogram.Histogram
	decodeHisto *hdrhistogram.Histogram
}

func newReport(label string) *report {
	return &report{
		label:       label,
		encodeHisto: hdrhistogram.New(1, int64(time.Minute), 3),
		decodeHisto: hdrhistogram.New(1, int64(time.Minute), 3),
	}
}

func (r *report) add(fr fileResult) {
	r.results = append(r.results, fr)
	_ = r.encodeHisto.RecordValue(fr.encodeTime.Nanoseconds())
	_ = r.decodeHisto.RecordValue(fr.decodeTime.Nanoseconds())
}

func (r *report) totalJSONBytes() int {
	total := 0
	for _, fr := range r.results {
		total += fr.jsonBytes
	}
	return total
}

func (r *report) totalEncodedBytes() int {
	total := 0
	for _, fr := range r.results {
		total += fr.encodedBytes
	}
	return total
}

func (r *report) compressionRatio() float64 {
	if r.totalEncodedBytes() == 0 {
		return 0
	}
	return float64(r.totalJSONBytes()) / float64(r.totalEncodedBytes())
}

// writeSummaryTable renders one row per report, comparing encoded size,
// compression ratio, and encode/decode p50/p99 latency.
func writeSummaryTable(w io.Writer, reports []*report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"compressor", "files", "json bytes", "encoded bytes", "ratio", "encode p50", "encode p99", "decode p50", "decode p99"})
	for _, r := range reports {
		table.Append([]string{
			r.label,
			fmt.Sprintf("%d", len(r.results)),
			fmt.Sprintf("%d", r.totalJSONBytes()),
			fmt.Sprintf("%d", r.totalEncodedBytes()),
			fmt.Sprintf("%.2f", r.compressionRatio()),
			time.Duration(r.encodeHisto.ValueAtQuantile(50)).String(),
			time.Duration(r.encodeHisto.ValueAtQuantile(99)).String(),
			time.Duration(r.decodeHisto.ValueAtQuantile(50)).String(),
			time.Duration(r.decodeHisto.ValueAtQuantile(99)).String(),
		})
	}
	table.Render()
}

// plotRatios renders an ASCII line graph of each report's compression
// ratio, for a quick terminal-visible comparison across compressors.
func plotRatios(w io.Writer, reports []*report) {
	ratios := make([]float64, len(reports))
	for i, r := range reports {
		ratios[i] = r.compressionRatio()
	}
	graph := asciigraph.Plot(ratios, asciigraph.Height(10), asciigraph.Caption("compression ratio by compressor"))
	fmt.Fprintln(w, graph)
}
