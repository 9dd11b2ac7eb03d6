package pool_test

import (
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/pool"
)

var errBoom = boomError{}

type boomError struct{}

func (boomError) Error() string { return "boom" }

var _ = Describe("Pool", func() {
	It("runs every submitted task and accounts per-worker busy time", func() {
		p := pool.New(4, 8)

		var count atomic.Int64
		futures := make([]*pool.Future, 0, 20)

		for i := 0; i < 20; i++ {
			i := i
			f, err := p.Submit(func() (any, error) {
				count.Add(1)
				time.Sleep(time.Millisecond)
				return i * 2, nil
			})
			Expect(err).ToNot(HaveOccurred())
			futures = append(futures, f)
		}

		for i, f := range futures {
			v, err := f.Get()
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(i * 2))
		}

		p.Close()
		busy := p.Join()

		Expect(count.Load()).To(Equal(int64(20)))
		Expect(busy).To(HaveLen(4))

		var total time.Duration
		for _, d := range busy {
			total += d
		}
		Expect(total).To(BeNumerically(">", 0))
	})

	It("rejects Submit after Close", func() {
		p := pool.New(2, 0)
		p.Close()
		p.Join()

		_, err := p.Submit(func() (any, error) { return nil, nil })
		Expect(err).To(HaveOccurred())
		Expect(err.IsCodeError(pool.ErrorPoolClosed)).To(BeTrue())
	})

	It("propagates a task's returned error through its Future", func() {
		p := pool.New(1, 1)

		f, err := p.Submit(func() (any, error) {
			return nil, errBoom
		})
		Expect(err).ToNot(HaveOccurred())

		_, gerr := f.Get()
		Expect(gerr).To(Equal(errBoom))

		p.Close()
		p.Join()
	})
})
