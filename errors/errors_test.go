package errors_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/sabouaram/przm/errors"
)

const testCode liberr.CodeError = liberr.MinAvailable + 1

func init() {
	if liberr.ExistInMapMessage(testCode) {
		panic(fmt.Errorf("error code collision in errors_test"))
	}
	liberr.RegisterIdFctMessage(testCode, func(code liberr.CodeError) string {
		if code == testCode {
			return "test failure"
		}
		return liberr.NullMessage
	})
}

var _ = Describe("CodeError", func() {
	It("resolves its registered message", func() {
		Expect(testCode.Message()).To(Equal("test failure"))
	})

	It("wraps a parent error", func() {
		parent := fmt.Errorf("disk full")
		err := testCode.ErrorParent(parent)

		Expect(err.IsCodeError(testCode)).To(BeTrue())
		Expect(err.Error()).To(Equal("test failure"))

		unwrapped := err.Unwrap()
		Expect(unwrapped).To(HaveLen(1))
		Expect(unwrapped[0].Error()).To(Equal("disk full"))
	})

	It("propagates HasCodeError through a parent chain", func() {
		inner := testCode.Error()
		outer := liberr.New(liberr.UnknownError, "outer", inner)

		Expect(outer.HasCodeError(testCode)).To(BeTrue())
	})

	It("matches via Is", func() {
		err := testCode.Error()
		Expect(liberr.Is(err, testCode)).To(BeTrue())
	})
})
