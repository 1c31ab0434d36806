// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package fjson implements a compact binary encoding for the JSON data
// model: type-tagged values, narrowest-fit numeric downcast, an optional
// two-level keys dictionary, and an extensible frame with optional block
// compression.
package fjson
