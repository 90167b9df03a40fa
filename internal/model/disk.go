// Package model defines the data structures for the alternating disks problem.
package model

import (
	"strings"
)

// DiskColor is the color of a single disk.
type DiskColor int

const (
	// DiskLight is a light disk, rendered as "L".
	DiskLight DiskColor = iota
	// DiskDark is a dark disk, rendered as "D".
	DiskDark
)

// String returns the render token for the color.
func (c DiskColor) String() string {
	if c == DiskLight {
		return "L"
	}

	return "D"
}

// DiskRow is a fixed-length row of 2n disks with n of each color.
// The zero value is an empty row; use NewDiskRow or ParseDiskRow to build one.
//
// Assigning a row copies it. Swap copies the storage the first time it is
// called through a given address, so mutating one copy never changes another.
// A row that has already been swapped in place keeps its storage; take a
// Clone of it before mutating it again if the earlier copy must stay fixed.
type DiskRow struct {
	colors []DiskColor
	// owner is the address that may write colors in place.
	owner *DiskRow
}

// NewDiskRow returns the alternating layout L D L D ... of length 2*lightCount.
func NewDiskRow(lightCount int) (DiskRow, error) {
	if lightCount <= 0 {
		return DiskRow{}, &ConstructionError{Count: lightCount, Reason: "light count must be positive"}
	}

	colors := make([]DiskColor, lightCount*2)
	for i := 1; i < len(colors); i += 2 {
		colors[i] = DiskDark
	}

	return DiskRow{colors: colors}, nil
}

// ParseDiskRow builds a row from its rendered form, e.g. "L L D D".
func ParseDiskRow(s string) (DiskRow, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return DiskRow{}, &ConstructionError{Count: len(tokens), Reason: "row length must be even and positive"}
	}

	colors := make([]DiskColor, len(tokens))
	light := 0

	for i, token := range tokens {
		switch token {
		case "L":
			colors[i] = DiskLight
			light++
		case "D":
			colors[i] = DiskDark
		default:
			return DiskRow{}, &ConstructionError{Count: len(tokens), Reason: "unknown disk " + token}
		}
	}

	if light*2 != len(tokens) {
		return DiskRow{}, &ConstructionError{Count: len(tokens), Reason: "light and dark counts differ"}
	}

	return DiskRow{colors: colors}, nil
}

// Clone returns a copy that shares no storage with r.
func (r DiskRow) Clone() DiskRow {
	if r.colors == nil {
		return DiskRow{}
	}

	colors := make([]DiskColor, len(r.colors))
	copy(colors, r.colors)

	return DiskRow{colors: colors}
}

// TotalCount returns the number of disks in the row.
func (r DiskRow) TotalCount() int {
	return len(r.colors)
}

// LightCount returns the number of light disks.
func (r DiskRow) LightCount() int {
	return r.TotalCount() / 2
}

// DarkCount returns the number of dark disks.
func (r DiskRow) DarkCount() int {
	return r.LightCount()
}

// IsIndex reports whether i addresses a disk in the row.
func (r DiskRow) IsIndex(i int) bool {
	return i >= 0 && i < r.TotalCount()
}

// Get returns the color at index.
func (r DiskRow) Get(index int) (DiskColor, error) {
	if !r.IsIndex(index) {
		return 0, &IndexError{Op: "get", Index: index, Total: r.TotalCount()}
	}

	return r.colors[index], nil
}

// Swap exchanges the disks at leftIndex and leftIndex+1.
// Both indices are checked before anything is moved.
func (r *DiskRow) Swap(leftIndex int) error {
	if !r.IsIndex(leftIndex) {
		return &IndexError{Op: "swap", Index: leftIndex, Total: r.TotalCount()}
	}

	rightIndex := leftIndex + 1
	if !r.IsIndex(rightIndex) {
		return &IndexError{Op: "swap", Index: rightIndex, Total: r.TotalCount()}
	}

	if r.owner != r {
		r.colors = r.Clone().colors
		r.owner = r
	}

	r.colors[leftIndex], r.colors[rightIndex] = r.colors[rightIndex], r.colors[leftIndex]

	return nil
}

// Equal reports whether both rows have the same length and colors.
func (r DiskRow) Equal(other DiskRow) bool {
	if len(r.colors) != len(other.colors) {
		return false
	}

	for i := range r.colors {
		if r.colors[i] != other.colors[i] {
			return false
		}
	}

	return true
}

// IsInitialized reports whether the row is in the alternating layout,
// light at every even index and dark at every odd one.
func (r DiskRow) IsInitialized() bool {
	for i, color := range r.colors {
		if (i%2 == 0) != (color == DiskLight) {
			return false
		}
	}

	return true
}

// IsSorted reports whether all light disks precede all dark disks.
func (r DiskRow) IsSorted() bool {
	half := r.LightCount()

	for i, color := range r.colors {
		if (i < half) != (color == DiskLight) {
			return false
		}
	}

	return true
}

// String renders the row as space separated "L"/"D" tokens in index order.
func (r DiskRow) String() string {
	var sb strings.Builder

	for i, color := range r.colors {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(color.String())
	}

	return sb.String()
}
