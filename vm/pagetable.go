package vm

import "fmt"

// A PageTableEntry maintains the residency state of one virtual page. Dirty
// is reserved for write-back extensions; nothing sets or reads it.
type PageTableEntry struct {
	Valid bool
	Frame int
	Dirty bool
}

// A PageTable maps each virtual page to its residency state. It is a pure
// state container; replacement policy lives elsewhere.
//
// At most one entry references a given frame at any time, and exactly the
// entries with Valid set do so.
type PageTable interface {
	// NumPages returns the number of pages in the virtual address space.
	NumPages() int

	// IsResident reports whether the page currently occupies a frame.
	IsResident(page int) bool

	// FrameOf returns the frame that holds the page. The bool return value
	// indicates whether the page is resident.
	FrameOf(page int) (int, bool)

	// MarkResident records that the page now occupies the given frame.
	MarkResident(page int, frame int)

	// MarkEvicted records that the page no longer occupies any frame.
	MarkEvicted(page int)
}

// NewPageTable creates a PageTable covering pages [0, numPages), all
// initially non-resident.
func NewPageTable(numPages int) (PageTable, error) {
	if numPages <= 0 {
		return nil, fmt.Errorf(
			"%w: number of pages must be positive, got %d",
			ErrInvalidConfiguration, numPages)
	}

	t := &pageTableImpl{
		entries: make([]PageTableEntry, numPages),
	}
	for i := range t.entries {
		t.entries[i].Frame = -1
	}

	return t, nil
}

// pageTableImpl is the default implementation of a PageTable.
type pageTableImpl struct {
	entries []PageTableEntry
}

func (t *pageTableImpl) NumPages() int {
	return len(t.entries)
}

func (t *pageTableImpl) IsResident(page int) bool {
	t.pageMustBeInRange(page)
	return t.entries[page].Valid
}

func (t *pageTableImpl) FrameOf(page int) (int, bool) {
	t.pageMustBeInRange(page)

	entry := t.entries[page]
	if !entry.Valid {
		return 0, false
	}

	return entry.Frame, true
}

func (t *pageTableImpl) MarkResident(page int, frame int) {
	t.pageMustBeInRange(page)

	entry := &t.entries[page]
	if entry.Valid && entry.Frame != frame {
		panic(fmt.Sprintf(
			"page %d is already resident in frame %d, cannot remap to %d",
			page, entry.Frame, frame))
	}

	entry.Valid = true
	entry.Frame = frame
}

func (t *pageTableImpl) MarkEvicted(page int) {
	t.pageMustBeInRange(page)

	entry := &t.entries[page]
	if !entry.Valid {
		panic(fmt.Sprintf("page %d is not resident", page))
	}

	entry.Valid = false
	entry.Frame = -1
}

func (t *pageTableImpl) pageMustBeInRange(page int) {
	if page < 0 || page >= len(t.entries) {
		panic(fmt.Sprintf("page %d out of range [0, %d)", page, len(t.entries)))
	}
}
