package writer_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/reader"
	"github.com/sabouaram/przm/archive/writer"
)

func writeInput(dir, name, content string) string {
	p := filepath.Join(dir, name)
	Expect(os.MkdirAll(filepath.Dir(p), 0o755)).To(Succeed())
	Expect(os.WriteFile(p, []byte(content), 0o644)).To(Succeed())
	return p
}

var _ = Describe("Create", func() {
	It("writes a prefix-only archive for no inputs", func() {
		dir := GinkgoT().TempDir()
		archive := filepath.Join(dir, "empty.przm")

		report, err := writer.Create(archive, nil, writer.Options{})
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Entries).To(Equal(int64(0)))

		info, serr := os.Stat(archive)
		Expect(serr).ToNot(HaveOccurred())
		Expect(info.Size()).To(Equal(int64(container.PrefixSize)))
	})

	It("round trips a non-solid archive with digests", func() {
		dir := GinkgoT().TempDir()
		writeInput(dir, "a.txt", "alpha content")
		writeInput(dir, "sub/b.txt", "bravo content, a little longer this time")

		archive := filepath.Join(dir, "out.przm")
		report, err := writer.Create(archive, []string{dir}, writer.Options{
			Codec:  compress.Zstd,
			Level:  3,
			Digest: digest.SHA256,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Entries).To(Equal(int64(2)))

		entries, rerr := reader.Scan(archive)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(2))

		for _, e := range entries {
			Expect(e.DigestHex).ToNot(BeEmpty(), "entry %q missing digest", e.Path)
		}
	})

	It("round trips a solid archive", func() {
		dir := GinkgoT().TempDir()
		writeInput(dir, "a.txt", "aaaa")
		writeInput(dir, "b.txt", "bbbbbb")

		archive := filepath.Join(dir, "solid.przm")
		report, err := writer.Create(archive, []string{dir}, writer.Options{
			Codec:  compress.Zstd,
			Level:  3,
			Digest: digest.SHA1,
			Solid:  true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Entries).To(Equal(int64(2)))

		entries, rerr := reader.Scan(archive)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		for _, e := range entries {
			Expect(e.Kind).To(Equal(container.SolidMember), "entry %q", e.Path)
		}
	})

	It("downgrades an already-compressed file to store", func() {
		dir := GinkgoT().TempDir()
		writeInput(dir, "photo.jpg", "not actually a jpeg but has the extension")

		archive := filepath.Join(dir, "out.przm")
		_, err := writer.Create(archive, []string{dir}, writer.Options{
			Codec: compress.Zlib,
			Level: 9,
		})
		Expect(err).ToNot(HaveOccurred())

		entries, rerr := reader.Scan(archive)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].CodecID).To(Equal(uint8(compress.None)))
	})

	It("fails when the disk estimator declines", func() {
		dir := GinkgoT().TempDir()
		writeInput(dir, "a.txt", "alpha content")

		archive := filepath.Join(dir, "out.przm")
		_, err := writer.Create(archive, []string{dir}, writer.Options{
			DiskEstimator: func(path string, estimatedBytes int64) bool { return false },
		})
		Expect(err).To(HaveOccurred())
		Expect(err.IsCodeError(writer.ErrorDiskFull)).To(BeTrue())
	})

	It("prompts Confirm before overwriting an existing archive and honors a decline", func() {
		dir := GinkgoT().TempDir()
		writeInput(dir, "a.txt", "alpha")

		archive := filepath.Join(dir, "out.przm")
		Expect(os.WriteFile(archive, []byte("not a przm file"), 0o644)).To(Succeed())

		asked := false
		_, err := writer.Create(archive, []string{dir}, writer.Options{
			Confirm: func(question string) bool {
				asked = true
				return false
			},
		})
		Expect(err).To(HaveOccurred())
		Expect(asked).To(BeTrue())

		raw, rerr := os.ReadFile(archive)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(string(raw)).To(Equal("not a przm file"))
	})
})

var _ = Describe("Append", func() {
	It("rejects a duplicate path", func() {
		dir := GinkgoT().TempDir()
		writeInput(dir, "a.txt", "alpha")

		archive := filepath.Join(dir, "out.przm")
		_, err := writer.Create(archive, []string{dir}, writer.Options{Codec: compress.None})
		Expect(err).ToNot(HaveOccurred())

		_, err = writer.Append(archive, []string{dir}, writer.Options{Codec: compress.None})
		Expect(err).To(HaveOccurred())
	})
})
