// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// batchdump converts a JSON document of component columns into
// extension-tagged arrow arrays and prints them, mainly for eyeballing
// what a downstream store would receive.
//
// The input maps logical component names to a scalar or a list of
// values, e.g.:
//
//	{
//	  "rerun.components.Radius": [1.5, 2, "3.5"],
//	  "rerun.components.ScalarScattering": true
//	}
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"

	"github.com/yutiansut/rerun"
	_ "github.com/yutiansut/rerun/components"
)

const usage = `Component Batch Dumper.
Usage:
  batchdump -h | --help
  batchdump [--record] [<file>]
Options:
  -h --help   Show this screen.
  --record    Assemble all columns into a single record before printing.`

func main() {
	args, _ := docopt.ParseDoc(usage)

	in := os.Stdin
	if f, ok := args["<file>"].(string); ok && f != "" {
		var err error
		in, err = os.Open(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening input: ", err)
			os.Exit(1)
		}
		defer in.Close()
	}

	doc, err := decode(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error decoding input: ", err)
		os.Exit(1)
	}

	columns := make(map[string]rerun.ArrayLike, len(doc))
	for name, raw := range doc {
		col, err := rerun.AsArrayLike(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading column %q: %v\n", name, err)
			os.Exit(1)
		}
		columns[name] = col
	}

	mem := memory.DefaultAllocator
	if asRecord, _ := args["--record"].(bool); asRecord {
		rec, err := rerun.ToArrowRecord(mem, columns)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error converting: ", err)
			os.Exit(1)
		}
		defer rec.Release()
		fmt.Print(rec)
		return
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ct, err := rerun.GetComponentType(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: ", err)
			os.Exit(1)
		}
		batch, err := rerun.ToArrow(mem, columns[name], ct)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", name, batch.Data())
		batch.Release()
	}
}

func decode(r io.Reader) (map[string]any, error) {
	var doc map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
