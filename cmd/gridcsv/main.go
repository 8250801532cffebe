// SPDX-License-Identifier: MIT

// Command gridcsv converts between CSV files and dense numeric arrays.
//
// Usage:
//
//	gridcsv read matrix.csv --rows 2 --cols 3 --type int --output json
//	gridcsv convert in.csv.gz out.tsv --out-delimiter '\t'
//	gridcsv convert in.csv - --compression zstd
//	gridcsv config save gridcsv.yaml --delimiter ';'
//	gridcsv version
package main

import (
	"os"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
