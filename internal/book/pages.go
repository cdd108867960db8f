package book

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// pageMarker matches a line of the form "###Page <N>###".
var pageMarker = regexp.MustCompile(`(?m)^###Page (\d+)###(?:\r?\n|\z)`)

// ParsePages splits page-delimited text into a page map.
//
// Text before the first marker is ignored. A marker whose number is not a
// positive integer is not a marker and stays part of the surrounding page.
// When a page number repeats, the later page replaces the earlier one.
func ParsePages(src string) Pages {
	type marker struct {
		num        int
		start, end int
	}

	var markers []marker
	for _, m := range pageMarker.FindAllStringSubmatchIndex(src, -1) {
		num, err := strconv.Atoi(src[m[2]:m[3]])
		if err != nil || num < 1 {
			continue
		}
		markers = append(markers, marker{num: num, start: m[0], end: m[1]})
	}

	pages := make(Pages, len(markers))
	for i, m := range markers {
		bodyEnd := len(src)
		if i+1 < len(markers) {
			bodyEnd = markers[i+1].start
		}
		pages[m.num] = strings.TrimSpace(src[m.end:bodyEnd])
	}
	return pages
}

// LoadPages reads and parses the page file at path.
func LoadPages(path string) (Pages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pages %s: %w", path, err)
	}
	return ParsePages(string(data)), nil
}
