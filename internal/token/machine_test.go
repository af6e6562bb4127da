package token_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thorny/internal/indexset"
	"github.com/san-kum/thorny/internal/token"
)

func overlapsOf(idx ...int) *indexset.Set {
	s := indexset.New(len(idx))
	for _, i := range idx {
		s.Append(i)
	}
	return s
}

var _ = Describe("Machine", func() {
	var m *token.Machine

	BeforeEach(func() {
		m = token.NewMachine(0, 8)
	})

	It("starts with the given holder and no cooldowns", func() {
		Expect(m.Active()).To(Equal(0))
		Expect(m.Cooldown()).To(BeEmpty())
	})

	Context("with no overlaps", func() {
		It("keeps the holder", func() {
			tr := m.Apply(overlapsOf())
			Expect(tr.Transferred).To(BeFalse())
			Expect(m.Active()).To(Equal(0))
		})

		It("clears the cooldown set", func() {
			m.Apply(overlapsOf(1))
			m.Apply(overlapsOf(2))
			Expect(m.CooldownLen()).To(Equal(2))

			tr := m.Apply(overlapsOf())
			Expect(tr.Cleared).To(BeTrue())
			Expect(m.Cooldown()).To(BeEmpty())
		})

		It("does not report a clear when nothing was cooling", func() {
			Expect(m.Apply(overlapsOf()).Cleared).To(BeFalse())
		})
	})

	Context("with overlapping candidates", func() {
		It("transfers to the smallest eligible index only", func() {
			tr := m.Apply(overlapsOf(3, 5, 7))
			Expect(tr).To(Equal(token.Transition{From: 0, To: 3, Transferred: true}))
			Expect(m.Active()).To(Equal(3))
			Expect(m.Cooldown()).To(Equal([]int{0}))
		})

		It("puts the previous holder in cooldown and never the new one", func() {
			m.Apply(overlapsOf(4))
			Expect(m.Cooling(0)).To(BeTrue())
			Expect(m.Cooling(4)).To(BeFalse())
		})

		It("skips cooling candidates", func() {
			m.Apply(overlapsOf(1))
			tr := m.Apply(overlapsOf(0, 2))
			Expect(tr.To).To(Equal(2))
			Expect(m.Cooldown()).To(Equal([]int{0, 1}))
		})

		It("stays put when every candidate is cooling", func() {
			m.Apply(overlapsOf(1))
			before := m.Cooldown()

			tr := m.Apply(overlapsOf(0))
			Expect(tr.Transferred).To(BeFalse())
			Expect(tr.Cleared).To(BeFalse())
			Expect(m.Active()).To(Equal(1))
			Expect(m.Cooldown()).To(Equal(before))
		})
	})

	Context("with two bodies locked together", func() {
		It("moves once and never returns while the overlap persists", func() {
			Expect(m.Apply(overlapsOf(1)).Transferred).To(BeTrue())
			for i := 0; i < 100; i++ {
				Expect(m.Apply(overlapsOf(0)).Transferred).To(BeFalse())
			}
			Expect(m.Active()).To(Equal(1))
		})

		It("can return after a frame without overlaps", func() {
			m.Apply(overlapsOf(1))
			m.Apply(overlapsOf())
			tr := m.Apply(overlapsOf(0))
			Expect(tr.Transferred).To(BeTrue())
			Expect(m.Active()).To(Equal(0))
		})
	})

	It("Reset hands over the token and forgets cooldowns", func() {
		m.Apply(overlapsOf(2))
		m.Reset(5)
		Expect(m.Active()).To(Equal(5))
		Expect(m.Cooldown()).To(BeEmpty())
	})
})
