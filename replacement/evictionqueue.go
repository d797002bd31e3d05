// Package replacement implements the FIFO page-replacement engine that
// drives a page table and a frame pool through a reference sequence.
package replacement

import (
	"container/list"
	"fmt"
)

// An occupancyEntry records that a frame holds a page, positioned in the
// queue by load time.
type occupancyEntry struct {
	frame int
	page  int
}

// An EvictionQueue orders resident pages by the time they were loaded and
// selects the next victim. The queue holds exactly one entry per resident
// page; the engine keeps it consistent with the page table.
//
// The engine only depends on this interface, so a different ordering policy
// can be substituted for the FIFO default.
type EvictionQueue interface {
	// PushTail appends an occupancy record as the youngest entry.
	PushTail(frame int, page int)

	// PopHead removes and returns the oldest entry. Popping an empty queue
	// is an internal-consistency failure and panics.
	PopHead() (frame int, page int)

	// RemoveByPage removes the entry for the page wherever it sits,
	// preserving the relative order of the remaining entries. It reports
	// whether an entry was removed. The FIFO fault path never needs this;
	// it exists for external invalidation and for other policies.
	RemoveByPage(page int) bool

	// Len returns the number of queued entries.
	Len() int
}

// NewFIFOQueue creates an EvictionQueue with strict first-in-first-out
// ordering. Hits never reorder it.
func NewFIFOQueue() EvictionQueue {
	return &fifoQueue{
		entries:      list.New(),
		entriesTable: make(map[int]*list.Element),
	}
}

// fifoQueue keeps a doubly linked list for ordering and a map from page to
// list element for constant-time removal.
type fifoQueue struct {
	entries      *list.List
	entriesTable map[int]*list.Element
}

func (q *fifoQueue) PushTail(frame int, page int) {
	q.pageMustNotBeQueued(page)

	elem := q.entries.PushBack(occupancyEntry{frame: frame, page: page})
	q.entriesTable[page] = elem
}

func (q *fifoQueue) PopHead() (int, int) {
	elem := q.entries.Front()
	if elem == nil {
		panic("eviction queue is empty")
	}

	entry := elem.Value.(occupancyEntry)
	q.entries.Remove(elem)
	delete(q.entriesTable, entry.page)

	return entry.frame, entry.page
}

func (q *fifoQueue) RemoveByPage(page int) bool {
	elem, found := q.entriesTable[page]
	if !found {
		return false
	}

	q.entries.Remove(elem)
	delete(q.entriesTable, page)

	return true
}

func (q *fifoQueue) Len() int {
	return q.entries.Len()
}

func (q *fifoQueue) pageMustNotBeQueued(page int) {
	if _, found := q.entriesTable[page]; found {
		panic(fmt.Sprintf("page %d is already queued", page))
	}
}
