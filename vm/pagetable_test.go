package vm

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PageTable", func() {
	var table PageTable

	BeforeEach(func() {
		var err error
		table, err = NewPageTable(8)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject a non-positive page count", func() {
		_, err := NewPageTable(0)
		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())

		_, err = NewPageTable(-3)
		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())
	})

	It("should start with all pages non-resident", func() {
		for page := 0; page < table.NumPages(); page++ {
			Expect(table.IsResident(page)).To(BeFalse())

			_, ok := table.FrameOf(page)
			Expect(ok).To(BeFalse())
		}
	})

	It("should mark a page resident", func() {
		table.MarkResident(3, 1)

		Expect(table.IsResident(3)).To(BeTrue())

		frame, ok := table.FrameOf(3)
		Expect(ok).To(BeTrue())
		Expect(frame).To(Equal(1))
	})

	It("should mark a page evicted", func() {
		table.MarkResident(3, 1)
		table.MarkEvicted(3)

		Expect(table.IsResident(3)).To(BeFalse())

		_, ok := table.FrameOf(3)
		Expect(ok).To(BeFalse())
	})

	It("should tolerate re-marking a page in the same frame", func() {
		table.MarkResident(3, 1)

		Expect(func() { table.MarkResident(3, 1) }).NotTo(Panic())
	})

	It("should panic when remapping a resident page to another frame", func() {
		table.MarkResident(3, 1)

		Expect(func() { table.MarkResident(3, 2) }).To(Panic())
	})

	It("should panic when evicting a non-resident page", func() {
		Expect(func() { table.MarkEvicted(5) }).To(Panic())
	})

	It("should panic on out-of-range pages", func() {
		Expect(func() { table.IsResident(-1) }).To(Panic())
		Expect(func() { table.IsResident(8) }).To(Panic())
	})
})
