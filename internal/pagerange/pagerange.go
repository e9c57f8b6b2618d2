// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagerange parses page selector expressions into an ordered set
// of 1-based page indices.
package pagerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// All is the selector that means every page.
const All = "all"

// Parse resolves expr against a document with totalPages pages. The
// grammar is a comma-separated list of tokens, each a single 1-based page
// or an inclusive range "lo-hi" with lo <= hi. "all", "", and whitespace
// select every page. Overlapping tokens are deduplicated; the result is
// ascending. Malformed tokens, inverted ranges, and indices outside
// 1..totalPages are configuration errors.
func Parse(expr string, totalPages int) ([]int, error) {
	if totalPages <= 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	expr = strings.TrimSpace(expr)
	if expr == "" || strings.EqualFold(expr, All) {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, badRange(fmt.Sprintf("empty token in %q", expr))
		}

		lo, hi, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		if lo < 1 || hi > totalPages {
			return nil, badRange(fmt.Sprintf("page %s out of range 1-%d", token, totalPages))
		}
		for p := lo; p <= hi; p++ {
			seen[p] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}

// parseToken parses a single page number or a "lo-hi" range.
func parseToken(token string) (lo, hi int, err error) {
	if i := strings.Index(token, "-"); i >= 0 {
		lo, err = strconv.Atoi(strings.TrimSpace(token[:i]))
		if err != nil {
			return 0, 0, badRange(fmt.Sprintf("malformed range %q", token))
		}
		hi, err = strconv.Atoi(strings.TrimSpace(token[i+1:]))
		if err != nil {
			return 0, 0, badRange(fmt.Sprintf("malformed range %q", token))
		}
		if lo > hi {
			return 0, 0, badRange(fmt.Sprintf("inverted range %q: low bound exceeds high bound", token))
		}
		return lo, hi, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, 0, badRange(fmt.Sprintf("malformed page number %q", token))
	}
	return n, n, nil
}

func badRange(reason string) error {
	return &types.ConfigError{Field: "processing.pages", Reason: reason}
}
