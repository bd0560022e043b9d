// Package reference turns human-readable scripture references like
// "Genesis 1-3" or "2 Samuel 5:1-10" into per-chapter study links on an
// online commentary site.
package reference

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DefaultHost is the commentary site links point at unless overridden.
const DefaultHost = "bible-studys.org"

// Kind classifies the chapter specifier of a reference.
type Kind int

const (
	// Unparsed marks a segment whose shape was not recognized. It
	// contributes no links; malformed references are never an error
	// because links are supplementary to the schedule itself.
	Unparsed Kind = iota
	// Single is a plain chapter number, or an implied chapter 1 for
	// single-chapter books ("Philemon").
	Single
	// VerseQualified is a chapter with a verse range that is ignored
	// for link purposes ("5:1-10" reads as chapter 5).
	VerseQualified
	// Range is an inclusive ascending chapter range ("1-3").
	Range
)

// ChapterSpec is the classified chapter portion of a reference.
type ChapterSpec struct {
	Kind    Kind
	Chapter int // Single, VerseQualified
	Start   int // Range
	End     int // Range
}

// Reference is one parsed segment: a lowercase hyphenated book slug
// ("2-samuel") plus its chapter spec. References are transient; entries
// are reparsed on every lookup.
type Reference struct {
	Book string
	Spec ChapterSpec
}

// ParseEntry parses a reading entry, which may hold several references
// joined by ";". Unrecognized segments come back with Kind Unparsed.
func ParseEntry(entry string) []Reference {
	segments := strings.Split(entry, ";")
	refs := make([]Reference, 0, len(segments))
	for _, seg := range segments {
		refs = append(refs, parseSegment(seg))
	}
	return refs
}

// Links returns the study links for a whole entry, in segment order,
// one URL per chapter. Unparsed segments contribute nothing.
func Links(entry, host string) []string {
	var links []string
	for _, ref := range ParseEntry(entry) {
		links = append(links, ref.Links(host)...)
	}
	return links
}

// Links returns the study links for a single reference.
func (r Reference) Links(host string) []string {
	switch r.Spec.Kind {
	case Single, VerseQualified:
		return []string{chapterLink(host, r.Book, r.Spec.Chapter)}
	case Range:
		links := make([]string, 0, r.Spec.End-r.Spec.Start+1)
		for c := r.Spec.Start; c <= r.Spec.End; c++ {
			links = append(links, chapterLink(host, r.Book, c))
		}
		return links
	}
	return nil
}

func chapterLink(host, book string, chapter int) string {
	return fmt.Sprintf("https://%s/%s-chapter-%d", host, book, chapter)
}

func parseSegment(seg string) Reference {
	seg = strings.ToLower(strings.TrimSpace(seg))
	if seg == "" {
		return Reference{}
	}

	// Numbered books carry a space inside the book name ("1 john 4");
	// hyphenate it so the book is a single token.
	if unicode.IsDigit(rune(seg[0])) {
		seg = strings.Replace(seg, " ", "-", 1)
	}

	fields := strings.Fields(seg)
	switch len(fields) {
	case 1:
		// A book with no chapter spec has exactly one chapter.
		if !containsLetter(fields[0]) {
			return Reference{}
		}
		return Reference{Book: fields[0], Spec: ChapterSpec{Kind: Single, Chapter: 1}}
	case 2:
		return makeRef(fields[0], fields[1])
	default:
		// "psalm 91 3" shapes: a numeric token right after the book is
		// part of the book identity, not a chapter.
		if len(fields) == 3 && isNumber(fields[1]) {
			return makeRef(fields[0]+"-"+fields[1], fields[2])
		}
		// Multi-word book names ("song of solomon 2").
		book := strings.Join(fields[:len(fields)-1], "-")
		for _, f := range fields[1 : len(fields)-1] {
			if isNumber(f) {
				return Reference{}
			}
		}
		return makeRef(book, fields[len(fields)-1])
	}
}

func makeRef(book, spec string) Reference {
	if !containsLetter(book) {
		return Reference{}
	}
	cs := classifySpec(spec)
	if cs.Kind == Unparsed {
		return Reference{}
	}
	return Reference{Book: book, Spec: cs}
}

// classifySpec classifies a chapter-spec token by shape. Anything that
// is not a well-formed chapter, verse-qualified chapter, or ascending
// chapter range is Unparsed rather than guessed at.
func classifySpec(tok string) ChapterSpec {
	if i := strings.IndexByte(tok, ':'); i >= 0 {
		// Verses are ignored; only the part before ':' matters, and it
		// may itself be a chapter range.
		head := classifySpec(tok[:i])
		switch head.Kind {
		case Single:
			return ChapterSpec{Kind: VerseQualified, Chapter: head.Chapter}
		case Range:
			return head
		}
		return ChapterSpec{}
	}

	if strings.Contains(tok, "-") {
		parts := strings.SplitN(tok, "-", 2)
		start, okStart := parseChapter(parts[0])
		end, okEnd := parseChapter(parts[1])
		if !okStart || !okEnd || start > end {
			return ChapterSpec{}
		}
		return ChapterSpec{Kind: Range, Start: start, End: end}
	}

	if n, ok := parseChapter(tok); ok {
		return ChapterSpec{Kind: Single, Chapter: n}
	}
	return ChapterSpec{}
}

func parseChapter(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func isNumber(s string) bool {
	_, ok := parseChapter(s)
	return ok
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
