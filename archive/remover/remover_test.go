package remover_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/reader"
	"github.com/sabouaram/przm/archive/remover"
	"github.com/sabouaram/przm/archive/writer"
)

func writeFixture(dir, name, body string) string {
	p := filepath.Join(dir, name)
	Expect(os.WriteFile(p, []byte(body), 0o644)).To(Succeed())
	return p
}

var _ = Describe("Remove", func() {
	It("removes a matching non-solid entry and keeps the rest", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "one")
		b := writeFixture(src, "b.txt", "two")

		archivePath := filepath.Join(GinkgoT().TempDir(), "out.przm")
		_, werr := writer.Create(archivePath, []string{a, b}, writer.Options{Codec: compress.Zlib})
		Expect(werr).ToNot(HaveOccurred())

		report, rerr := remover.Remove(archivePath, []string{"a.txt"}, remover.Options{})
		Expect(rerr).ToNot(HaveOccurred())
		Expect(report.Removed).To(Equal(int64(1)))
		Expect(report.Kept).To(Equal(int64(1)))

		entries, serr := reader.Scan(archivePath)
		Expect(serr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Path).To(Equal("b.txt"))
	})

	It("materializes a kept solid member into a standalone lone entry", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "one")
		b := writeFixture(src, "b.txt", "two two two")

		archivePath := filepath.Join(GinkgoT().TempDir(), "s.przm")
		_, werr := writer.Create(archivePath, []string{a, b}, writer.Options{
			Codec:  compress.Zstd,
			Digest: digest.SHA256,
			Solid:  true,
		})
		Expect(werr).ToNot(HaveOccurred())

		report, rerr := remover.Remove(archivePath, []string{"a.txt"}, remover.Options{})
		Expect(rerr).ToNot(HaveOccurred())
		Expect(report.Removed).To(Equal(int64(1)))
		Expect(report.Kept).To(Equal(int64(1)))

		entries, serr := reader.Scan(archivePath)
		Expect(serr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Kind).To(Equal(container.Lone))
		Expect(entries[0].Path).To(Equal("b.txt"))
	})

	It("reports NothingToRemove unless ignore_errors is set", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "one")

		archivePath := filepath.Join(GinkgoT().TempDir(), "out.przm")
		_, werr := writer.Create(archivePath, []string{a}, writer.Options{})
		Expect(werr).ToNot(HaveOccurred())

		_, rerr := remover.Remove(archivePath, []string{"missing.txt"}, remover.Options{})
		Expect(rerr).To(HaveOccurred())

		report, rerr2 := remover.Remove(archivePath, []string{"missing.txt"}, remover.Options{IgnoreErrors: true})
		Expect(rerr2).ToNot(HaveOccurred())
		Expect(report.Removed).To(Equal(int64(0)))
		Expect(report.Kept).To(Equal(int64(0)))
	})
})
