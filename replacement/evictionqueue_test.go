package replacement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FIFOQueue", func() {
	var queue EvictionQueue

	BeforeEach(func() {
		queue = NewFIFOQueue()
	})

	It("should start empty", func() {
		Expect(queue.Len()).To(Equal(0))
	})

	It("should pop entries oldest first", func() {
		queue.PushTail(0, 10)
		queue.PushTail(1, 11)
		queue.PushTail(2, 12)

		frame, page := queue.PopHead()
		Expect(frame).To(Equal(0))
		Expect(page).To(Equal(10))

		frame, page = queue.PopHead()
		Expect(frame).To(Equal(1))
		Expect(page).To(Equal(11))

		Expect(queue.Len()).To(Equal(1))
	})

	It("should panic when popping an empty queue", func() {
		Expect(func() { queue.PopHead() }).To(Panic())
	})

	It("should panic when queueing a page twice", func() {
		queue.PushTail(0, 10)

		Expect(func() { queue.PushTail(1, 10) }).To(Panic())
	})

	It("should remove a middle entry and preserve the remaining order", func() {
		queue.PushTail(0, 10)
		queue.PushTail(1, 11)
		queue.PushTail(2, 12)

		Expect(queue.RemoveByPage(11)).To(BeTrue())
		Expect(queue.Len()).To(Equal(2))

		frame, page := queue.PopHead()
		Expect(frame).To(Equal(0))
		Expect(page).To(Equal(10))

		frame, page = queue.PopHead()
		Expect(frame).To(Equal(2))
		Expect(page).To(Equal(12))
	})

	It("should report removal of an absent page as a no-op", func() {
		queue.PushTail(0, 10)

		Expect(queue.RemoveByPage(99)).To(BeFalse())
		Expect(queue.Len()).To(Equal(1))
	})

	It("should allow a removed page to be queued again", func() {
		queue.PushTail(0, 10)
		queue.RemoveByPage(10)
		queue.PushTail(1, 10)

		frame, page := queue.PopHead()
		Expect(frame).To(Equal(1))
		Expect(page).To(Equal(10))
	})
})
