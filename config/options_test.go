package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/config"
)

var _ = Describe("Options", func() {
	Describe("LoadOptionsFile", func() {
		It("loads a YAML options file", func() {
			dir := GinkgoT().TempDir()
			p := filepath.Join(dir, "opts.yaml")

			content := "archive: out.przm\n" +
				"inputs:\n  - a.txt\n  - sub\n" +
				"codec: zstd\n" +
				"level: 9\n" +
				"digest: sha256\n" +
				"solid: true\n" +
				"thread_count: 4\n"

			Expect(os.WriteFile(p, []byte(content), 0o644)).To(Succeed())

			opts, err := config.LoadOptionsFile(p)
			Expect(err).ToNot(HaveOccurred())

			Expect(opts.Archive).To(Equal("out.przm"))
			Expect(opts.Codec).To(Equal("zstd"))
			Expect(opts.Level).To(Equal(9))
			Expect(opts.Solid).To(BeTrue())
			Expect(opts.ThreadCount).To(Equal(4))
			Expect(opts.Inputs).To(Equal([]string{"a.txt", "sub"}))
		})

		It("reports an error for a missing file", func() {
			_, err := config.LoadOptionsFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(HaveOccurred())
			Expect(err.IsCodeError(config.ErrorFileNotFound)).To(BeTrue())
		})
	})

	Describe("ToArchiveOptions", func() {
		It("resolves codec and digest names into archive.Options", func() {
			opts := config.Options{
				Codec:  "zstd",
				Digest: "sha256",
				Level:  7,
				Solid:  true,
			}

			aopts, err := opts.ToArchiveOptions()
			Expect(err).ToNot(HaveOccurred())
			Expect(aopts.Solid).To(BeTrue())
			Expect(aopts.Level).To(Equal(7))
		})

		It("rejects an unknown codec name", func() {
			opts := config.Options{Codec: "not-a-codec"}
			_, err := opts.ToArchiveOptions()
			Expect(err).To(HaveOccurred())
		})
	})
})
