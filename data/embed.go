// Package data embeds the small dhātupāṭha subset this port ships with
// and provides a sorted-slice binary-search lookup over it, in the
// teacher's data/embed.go + morph/dict.go idiom: a //go:embed byte slice
// parsed once at init() into parallel sorted slices.
package data

import (
	"bytes"
	_ "embed"
	"sort"
	"strings"
)

//go:embed dhatupatha.tsv
var dhatupathaRaw []byte

// DhatuEntry is one dhātupāṭha row: the upadeśa (citation form) as
// printed in the traditional text, its gaṇa number, and the gaṇa's
// traditional name.
type DhatuEntry struct {
	Upadesha string
	Gana     int
	GanaName string
}

var (
	dhatuUpadeshas []string // sorted for binary search
	dhatuEntries   []DhatuEntry
)

func init() {
	lines := bytes.Split(dhatupathaRaw, []byte("\n"))
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(string(line), "\t")
		if len(fields) != 3 {
			continue
		}
		gana := 0
		for _, c := range fields[1] {
			gana = gana*10 + int(c-'0')
		}
		dhatuEntries = append(dhatuEntries, DhatuEntry{
			Upadesha: fields[0],
			Gana:     gana,
			GanaName: fields[2],
		})
	}
	sort.Slice(dhatuEntries, func(i, j int) bool {
		return dhatuEntries[i].Upadesha < dhatuEntries[j].Upadesha
	})
	dhatuUpadeshas = make([]string, len(dhatuEntries))
	for i, e := range dhatuEntries {
		dhatuUpadeshas[i] = e.Upadesha
	}
}

// LookupDhatu returns the dhātupāṭha entry for the given citation form,
// or false if it isn't in this port's embedded subset. A miss is not
// fatal to derivation (spec.md §4.3 lets a caller supply an arbitrary
// citation directly); this is only used to cross-check gaṇa and to
// surface the traditional gaṇa name.
func LookupDhatu(upadesha string) (DhatuEntry, bool) {
	i := sort.SearchStrings(dhatuUpadeshas, upadesha)
	if i < len(dhatuUpadeshas) && dhatuUpadeshas[i] == upadesha {
		return dhatuEntries[i], true
	}
	return DhatuEntry{}, false
}
