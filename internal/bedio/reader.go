package bedio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/noamteyssier/coitrees"
)

// ReadFile parses a tab-separated BED-family file at path into Records.
// Lines may carry more than three fields (name, score, strand, ...); only
// the first three (chrom, start, end) are read, mirroring
// original_source/src/main.rs's read_bed_file, which also ignores any
// columns past the third.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bedio: opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f, path)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Read parses tab-separated BED-family records from r. path is used only
// to label errors (it need not be a real filesystem path).
func Read(r io.Reader, path string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var cerr *csv.ParseError
			if errors.As(err, &cerr) {
				line = cerr.Line
			}
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}
		// csv skips blank lines, so take the line number from the reader
		// rather than counting records.
		line, _ := cr.FieldPos(0)
		if len(fields) < 3 {
			return nil, newParseError(path, line, "expected at least 3 tab-separated fields, got %d", len(fields))
		}

		start, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, newParseError(path, line, "start field %q: %w", fields[1], err)
		}
		end, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return nil, newParseError(path, line, "end field %q: %w", fields[2], err)
		}

		out = append(out, Record{
			Chrom: fields[0],
			First: int32(start),
			Last:  int32(end) - 1, // BED end is exclusive
		})
	}

	return out, nil
}

// Group buckets records by chromosome and converts each bucket into
// coitrees.Node values, mirroring read_bed_file's
// HashMap<String, Vec<IntervalNode<T>>> grouping. meta computes each
// node's metadata from its record and its 0-based position within the
// whole input (not within its chromosome's bucket), so metadata stays
// stable regardless of how records happen to be grouped.
func Group[M any](records []Record, meta func(i int, r Record) M) map[string][]coitrees.Node[M] {
	groups := make(map[string][]coitrees.Node[M])
	for i, r := range records {
		groups[r.Chrom] = append(groups[r.Chrom], coitrees.Node[M]{
			First:    r.First,
			Last:     r.Last,
			Metadata: meta(i, r),
		})
	}
	return groups
}

// BuildTrees groups records by chromosome and builds one Tree per
// chromosome, exactly as read_bed_file builds one COITree per seqname.
func BuildTrees[M any](records []Record, meta func(i int, r Record) M) map[string]coitrees.Tree[M] {
	groups := Group(records, meta)
	trees := make(map[string]coitrees.Tree[M], len(groups))
	for chrom, nodes := range groups {
		trees[chrom] = coitrees.Build(nodes)
	}
	return trees
}
