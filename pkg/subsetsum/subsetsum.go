package subsetsum

import (
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

const kind = "subset-sum"

// SubsetSum holds base-10 numbers as digit-vectors, most significant digit first.
// Every number has the same width as the target
type SubsetSum struct {
	Target  []int
	Numbers [][]int
}

func (subsetSum SubsetSum) Width() int {
	return len(subsetSum.Target)
}

// Validate checks that every number has the target's width and that every digit fits a single decimal character
func (subsetSum SubsetSum) Validate() error {
	if err := validateDigits(subsetSum.Target); err != nil {
		return err
	}
	for i, number := range subsetSum.Numbers {
		if len(number) != subsetSum.Width() {
			return instance.NewFormatError(kind, "number %d has %d digits but the target has %d", i, len(number), subsetSum.Width())
		}
		if err := validateDigits(number); err != nil {
			return err
		}
	}
	return nil
}

func validateDigits(digits []int) error {
	if digit, ok := lo.Find(digits, func(digit int) bool { return digit < 0 || digit > 9 }); ok {
		return instance.NewFormatError(kind, "digit %d does not fit a single decimal character", digit)
	}
	return nil
}

// FormatInstance writes the header "count width", the concatenated target digits and one concatenated number per line
func FormatInstance(subsetSum SubsetSum) (string, error) {
	if err := subsetSum.Validate(); err != nil {
		return "", err
	}
	return instance.Encode(
		len(subsetSum.Numbers),
		subsetSum.Width(),
		[]string{joinDigits(subsetSum.Target)},
		lo.Map(subsetSum.Numbers, func(number []int, _ int) string { return joinDigits(number) }),
	), nil
}

// ParseInstance reads an instance written by FormatInstance
func ParseInstance(text string) (SubsetSum, error) {
	document, err := instance.Decode(kind, text)
	if err != nil {
		return SubsetSum{}, err
	}
	if len(document.Lines) == 0 {
		return SubsetSum{}, instance.NewFormatError(kind, "target line is missing")
	}

	count, width := document.Counts[0], document.Counts[1]
	target, err := splitDigits(document.Lines[0], width)
	if err != nil {
		return SubsetSum{}, err
	}

	lines := document.Lines[1:]
	if len(lines) != count {
		return SubsetSum{}, instance.NewFormatError(kind, "expected %d numbers but found %d", count, len(lines))
	}

	numbers := make([][]int, 0, count)
	for _, line := range lines {
		number, err := splitDigits(line, width)
		if err != nil {
			return SubsetSum{}, err
		}
		numbers = append(numbers, number)
	}

	return SubsetSum{Target: target, Numbers: numbers}, nil
}

func joinDigits(digits []int) string {
	var builder strings.Builder
	for _, digit := range digits {
		builder.WriteByte(byte('0' + digit))
	}
	return builder.String()
}

func splitDigits(line string, width int) ([]int, error) {
	line = strings.TrimSpace(line)
	if len(line) != width {
		return nil, instance.NewFormatError(kind, "%q must have exactly %d digits", line, width)
	}

	digits := make([]int, 0, width)
	for _, char := range line {
		if char < '0' || char > '9' {
			return nil, instance.NewFormatError(kind, "%q is not a decimal digit", char)
		}
		digits = append(digits, int(char-'0'))
	}
	return digits, nil
}
