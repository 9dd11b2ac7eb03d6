package verifier_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/verifier"
	"github.com/sabouaram/przm/archive/writer"
)

func writeFixture(dir, name, body string) string {
	p := filepath.Join(dir, name)
	Expect(os.WriteFile(p, []byte(body), 0o644)).To(Succeed())
	return p
}

var _ = Describe("Verify", func() {
	It("checks digests on a clean archive", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "hello")
		b := writeFixture(src, "b.txt", "world")

		archivePath := filepath.Join(GinkgoT().TempDir(), "out.przm")
		_, werr := writer.Create(archivePath, []string{a, b}, writer.Options{
			Codec:  compress.Gzip,
			Digest: digest.SHA256,
		})
		Expect(werr).ToNot(HaveOccurred())

		report, verr := verifier.Verify(archivePath, verifier.Options{})
		Expect(verr).ToNot(HaveOccurred())
		Expect(report.Checked).To(Equal(int64(2)))
		Expect(report.Mismatches).To(Equal(int64(0)))
	})

	It("skips entries with no digest", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "hello")

		archivePath := filepath.Join(GinkgoT().TempDir(), "out.przm")
		_, werr := writer.Create(archivePath, []string{a}, writer.Options{})
		Expect(werr).ToNot(HaveOccurred())

		report, verr := verifier.Verify(archivePath, verifier.Options{})
		Expect(verr).ToNot(HaveOccurred())
		Expect(report.NoDigest).To(Equal(int64(1)))
		Expect(report.Checked).To(Equal(int64(0)))
	})

	It("detects corruption of an already-written archive", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "a payload long enough to survive a flipped bit")

		archivePath := filepath.Join(GinkgoT().TempDir(), "out.przm")
		_, werr := writer.Create(archivePath, []string{a}, writer.Options{
			Digest: digest.SHA256,
		})
		Expect(werr).ToNot(HaveOccurred())

		raw, err := os.ReadFile(archivePath)
		Expect(err).ToNot(HaveOccurred())
		raw[len(raw)-1] ^= 0xFF
		Expect(os.WriteFile(archivePath, raw, 0o644)).To(Succeed())

		report, verr := verifier.Verify(archivePath, verifier.Options{})
		Expect(verr).ToNot(HaveOccurred())
		Expect(report.Mismatches).To(BeNumerically(">=", 1))
		Expect(report.MismatchedPaths).ToNot(BeEmpty())
		Expect(report.MismatchedPaths[0]).To(Equal("a.txt"))
	})

	It("verifies members of a solid block", func() {
		src := GinkgoT().TempDir()
		a := writeFixture(src, "a.txt", "one")
		b := writeFixture(src, "b.txt", "two")

		archivePath := filepath.Join(GinkgoT().TempDir(), "s.przm")
		_, werr := writer.Create(archivePath, []string{a, b}, writer.Options{
			Codec:  compress.Lz4,
			Digest: digest.BLAKE2b,
			Solid:  true,
		})
		Expect(werr).ToNot(HaveOccurred())

		report, verr := verifier.Verify(archivePath, verifier.Options{})
		Expect(verr).ToNot(HaveOccurred())
		Expect(report.Checked).To(Equal(int64(2)))
		Expect(report.Mismatches).To(Equal(int64(0)))
	})
})
