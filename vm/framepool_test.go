package vm

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FramePool", func() {
	var pool *FramePool

	BeforeEach(func() {
		var err error
		pool, err = NewFramePool(3)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject a non-positive capacity", func() {
		_, err := NewFramePool(0)
		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())

		_, err = NewFramePool(-1)
		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())
	})

	It("should start with all frames free and unoccupied", func() {
		Expect(pool.Capacity()).To(Equal(3))
		Expect(pool.FreeCount()).To(Equal(3))

		for frame := 0; frame < pool.Capacity(); frame++ {
			_, ok := pool.Occupant(frame)
			Expect(ok).To(BeFalse())
		}
	})

	It("should allocate frames from the lowest index up", func() {
		Expect(pool.AllocateNextFree()).To(Equal(0))
		Expect(pool.AllocateNextFree()).To(Equal(1))
		Expect(pool.AllocateNextFree()).To(Equal(2))
		Expect(pool.FreeCount()).To(Equal(0))
	})

	It("should panic when allocating from an exhausted pool", func() {
		for i := 0; i < 3; i++ {
			pool.AllocateNextFree()
		}

		Expect(func() { pool.AllocateNextFree() }).To(Panic())
	})

	It("should track occupants", func() {
		frame := pool.AllocateNextFree()
		pool.SetOccupant(frame, 7)

		page, ok := pool.Occupant(frame)
		Expect(ok).To(BeTrue())
		Expect(page).To(Equal(7))
	})

	It("should not free a frame when its occupant is replaced", func() {
		frame := pool.AllocateNextFree()
		pool.SetOccupant(frame, 7)
		pool.SetOccupant(frame, 4)

		Expect(pool.FreeCount()).To(Equal(2))

		page, ok := pool.Occupant(frame)
		Expect(ok).To(BeTrue())
		Expect(page).To(Equal(4))
	})

	It("should report occupancy with -1 for never-used frames", func() {
		frame := pool.AllocateNextFree()
		pool.SetOccupant(frame, 9)

		Expect(pool.Occupancy()).To(Equal([]int{9, -1, -1}))
	})

	It("should return a copy of the occupancy array", func() {
		occupancy := pool.Occupancy()
		occupancy[0] = 42

		_, ok := pool.Occupant(0)
		Expect(ok).To(BeFalse())
	})
})
