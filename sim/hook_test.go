package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	invoked []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.invoked = append(h.invoked, ctx)
}

var _ = Describe("HookableBase", func() {
	var (
		hookable *HookableBase
		hook     *recordingHook
	)

	BeforeEach(func() {
		hookable = NewHookableBase()
		hook = &recordingHook{}
	})

	It("should have no hooks initially", func() {
		Expect(hookable.NumHooks()).To(Equal(0))
	})

	It("should invoke registered hooks in order", func() {
		anotherHook := &recordingHook{}
		hookable.AcceptHook(hook)
		hookable.AcceptHook(anotherHook)

		pos := &HookPos{Name: "Sample"}
		hookable.InvokeHook(HookCtx{Pos: pos, Item: 42})

		Expect(hookable.NumHooks()).To(Equal(2))
		Expect(hook.invoked).To(HaveLen(1))
		Expect(hook.invoked[0].Pos).To(BeIdenticalTo(pos))
		Expect(hook.invoked[0].Item).To(Equal(42))
		Expect(anotherHook.invoked).To(HaveLen(1))
	})
})

var _ = Describe("IDGenerator", func() {
	It("should generate sequential IDs", func() {
		gen := GetIDGenerator()

		first := gen.Generate()
		second := gen.Generate()

		Expect(first).NotTo(Equal(second))
	})

	It("should generate unique run IDs", func() {
		Expect(NewRunID()).NotTo(Equal(NewRunID()))
	})
})
