package instance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Document is a decoded canonical instance: two header counts followed by the non-empty lines of the body
type Document struct {
	Kind   string
	Counts [2]int
	Lines  []string
}

// Encode writes the canonical two-section layout shared by every instance kind:
//
//	<count1> <count2>
//
//	<primary lines>
//
//	<secondary lines>
func Encode(count1, count2 int, primary, secondary []string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%d %d", count1, count2)
	builder.WriteString("\n\n")
	builder.WriteString(strings.Join(primary, "\n"))
	builder.WriteString("\n\n")
	builder.WriteString(strings.Join(secondary, "\n"))
	return builder.String()
}

// Decode reads the header counts of a canonical instance. Empty lines are ignored everywhere
func Decode(kind, text string) (Document, error) {
	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return len(strings.TrimSpace(line)) != 0
	})
	lines = lo.Map(lines, func(line string, _ int) string { return strings.TrimRight(line, "\r") })

	if len(lines) == 0 {
		return Document{}, NewFormatError(kind, "%v input is empty", kind)
	}

	header := strings.Fields(lines[0])
	if len(header) < 2 {
		return Document{}, NewFormatError(kind, "header %q must hold two counts", lines[0])
	}

	document := Document{
		Kind:  kind,
		Lines: lines[1:],
	}
	for i := range 2 {
		count, err := strconv.Atoi(header[i])
		if err != nil || count < 0 {
			return Document{}, NewFormatError(kind, "header count %q is not a non-negative integer", header[i])
		}
		document.Counts[i] = count
	}

	return document, nil
}

// Split returns the first Counts[0] body lines as primary items and every remaining line as secondary items
func (document Document) Split() (primary, secondary []string, err error) {
	if len(document.Lines) < document.Counts[0] {
		return nil, nil, NewFormatError(document.Kind, "expected %d primary lines but found %d", document.Counts[0], len(document.Lines))
	}
	return document.Lines[:document.Counts[0]], document.Lines[document.Counts[0]:], nil
}
