package archive_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive"
	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/digest"
)

func writeFixture(dir, name, body string) string {
	p := filepath.Join(dir, name)
	Expect(os.MkdirAll(filepath.Dir(p), 0o755)).To(Succeed())
	Expect(os.WriteFile(p, []byte(body), 0o644)).To(Succeed())
	return p
}

var _ = Describe("Engine lifecycle", func() {
	It("creates, lists, extracts, verifies and removes through the full cycle", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "hello\n")
		sub := writeFixture(src, "sub/b.bin", string([]byte{0xDE, 0xAD, 0xBE, 0xEF}))

		archivePath := filepath.Join(GinkgoT().TempDir(), "x.przm")

		_, cerr := archive.Create(archivePath, []string{a, sub}, archive.Options{
			Codec:  compress.Zlib,
			Level:  9,
			Digest: digest.SHA256,
		})
		Expect(cerr).ToNot(HaveOccurred())

		entries, lerr := archive.List(archivePath)
		Expect(lerr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(2))

		outDir := GinkgoT().TempDir()
		extractReport, eerr := archive.Extract(archivePath, outDir, archive.Options{})
		Expect(eerr).ToNot(HaveOccurred())
		Expect(extractReport.Extracted).To(Equal(int64(2)))

		gotA, _ := os.ReadFile(filepath.Join(outDir, filepath.Base(a)))
		Expect(string(gotA)).To(Equal("hello\n"))

		verifyReport, verr := archive.Verify(archivePath, archive.Options{})
		Expect(verr).ToNot(HaveOccurred())
		Expect(verifyReport.Checked).To(Equal(int64(2)))
		Expect(verifyReport.Mismatches).To(Equal(int64(0)))

		removeReport, rerr := archive.Remove(archivePath, archive.Options{Selection: []string{filepath.Base(a)}})
		Expect(rerr).ToNot(HaveOccurred())
		Expect(removeReport.Removed).To(Equal(int64(1)))
		Expect(removeReport.Kept).To(Equal(int64(1)))

		remaining, lerr2 := archive.List(archivePath)
		Expect(lerr2).ToNot(HaveOccurred())
		Expect(remaining).To(HaveLen(1))
	})

	It("produces a prefix-only archive at the empty boundary", func() {
		archivePath := filepath.Join(GinkgoT().TempDir(), "empty.przm")

		report, cerr := archive.Create(archivePath, nil, archive.Options{})
		Expect(cerr).ToNot(HaveOccurred())
		Expect(report.Entries).To(Equal(int64(0)))

		info, err := os.Stat(archivePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(info.Size()).To(Equal(int64(7)))

		entries, lerr := archive.List(archivePath)
		Expect(lerr).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())

		verifyReport, verr := archive.Verify(archivePath, archive.Options{})
		Expect(verr).ToNot(HaveOccurred())
		Expect(verifyReport.Checked).To(Equal(int64(0)))
		Expect(verifyReport.NoDigest).To(Equal(int64(0)))
	})
})
