package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/replacement"
)

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *replacement.Engine
	)

	BeforeEach(func() {
		var err error
		engine, err = replacement.MakeBuilder().
			WithNumFrames(2).
			WithNumPages(4).
			Build("Engine")
		Expect(err).NotTo(HaveOccurred())

		m = NewMonitor()
		m.RegisterEngine(engine)
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("References", 10)
		bar.IncrementFinished(3)

		recorder := httptest.NewRecorder()
		m.listProgressBars(recorder, nil)

		bars := []map[string]interface{}{}
		Expect(json.Unmarshal(recorder.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0]["name"]).To(Equal("References"))
		Expect(bars[0]["finished"]).To(BeEquivalentTo(3))

		m.CompleteProgressBar(bar)

		recorder = httptest.NewRecorder()
		m.listProgressBars(recorder, nil)

		bars = nil
		Expect(json.Unmarshal(recorder.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(BeEmpty())
	})

	It("should report engine stats", func() {
		engine.Access(0)
		engine.Access(0)
		engine.Access(1)

		recorder := httptest.NewRecorder()
		m.listStats(recorder, nil)

		rsp := statsRsp{}
		Expect(json.Unmarshal(recorder.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.References).To(Equal(uint64(3)))
		Expect(rsp.PageFaults).To(Equal(uint64(2)))
		Expect(rsp.SwapsOut).To(Equal(uint64(0)))
		Expect(rsp.Occupancy).To(Equal([]int{0, 1}))
	})
})
