package encoding_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/violationbit/internal/encoding"
)

var _ = Describe("Encode", func() {
	DescribeTable("single characters",
		func(in string, want encoding.Symbol, code string) {
			got, err := encoding.Encode(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]encoding.Symbol{want}))
			Expect(got[0].String()).To(Equal(code))
		},
		Entry("zero rises", "0", encoding.Rising, "01"),
		Entry("one falls", "1", encoding.Falling, "10"),
		Entry("space idles", " ", encoding.Idle, "00"),
	)

	It("encodes a framed signal position by position", func() {
		got, err := encoding.Encode("01011 10")
		Expect(err).NotTo(HaveOccurred())
		Expect(encoding.Codes(got)).To(Equal([]string{"01", "10", "01", "10", "10", "00", "10", "01"}))
	})

	It("returns an empty result for empty input", func() {
		got, err := encoding.Encode("")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).NotTo(BeNil())
		Expect(got).To(BeEmpty())
	})

	It("is deterministic", func() {
		a, errA := encoding.Encode("1 0 11")
		b, errB := encoding.Encode("1 0 11")
		Expect(errA).NotTo(HaveOccurred())
		Expect(errB).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	Context("with characters outside the alphabet", func() {
		It("rejects a single digit", func() {
			got, err := encoding.Encode("2")
			Expect(got).To(BeNil())
			Expect(errors.Is(err, encoding.ErrInvalidInput)).To(BeTrue())
		})

		It("reports every offending character", func() {
			_, err := encoding.Encode("0a1bc")
			var inv *encoding.InvalidInputError
			Expect(errors.As(err, &inv)).To(BeTrue())
			Expect(inv.Chars).To(HaveLen(3))
			Expect(inv.Chars[0]).To(Equal(encoding.CharError{Pos: 1, Char: 'a'}))
			Expect(inv.Chars[2]).To(Equal(encoding.CharError{Pos: 4, Char: 'c'}))
			Expect(inv.Got).To(Equal(2))
			Expect(err.Error()).To(HavePrefix("invalid input provided: "))
			Expect(err.Error()).To(ContainSubstring(`position 3: unsupported character 'b'`))
		})

		It("counts positions in characters, not bytes", func() {
			_, err := encoding.Encode("0é")
			var inv *encoding.InvalidInputError
			Expect(errors.As(err, &inv)).To(BeTrue())
			Expect(inv.Chars).To(ConsistOf(encoding.CharError{Pos: 1, Char: 'é'}))
		})
	})
})
