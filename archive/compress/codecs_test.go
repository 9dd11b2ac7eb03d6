package compress_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/compress"
)

var _ = Describe("Algorithm", func() {
	It("round trips every registered codec", func() {
		payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)

		for _, a := range compress.List() {
			if a == compress.Lzo {
				continue
			}

			out, err := a.CompressBytes(payload, 6)
			Expect(err).ToNot(HaveOccurred(), "CompressBytes for %s", a)

			back, err := a.DecompressBytes(out, len(payload))
			Expect(err).ToNot(HaveOccurred(), "DecompressBytes for %s", a)

			Expect(back).To(Equal(payload), "round trip mismatch for %s", a)
		}
	})

	It("streams through Writer/Reader via io.Copy", func() {
		payload := []byte("streamed content, compressed and decompressed through io.Copy")

		buf := &bytes.Buffer{}
		w, err := compress.Zstd.Writer(buf, 3)
		Expect(err).ToNot(HaveOccurred())
		_, werr := w.Write(payload)
		Expect(werr).ToNot(HaveOccurred())
		Expect(w.Close()).To(Succeed())

		r, err := compress.Zstd.Reader(buf)
		Expect(err).ToNot(HaveOccurred())
		defer r.Close()

		got, rdErr := io.ReadAll(r)
		Expect(rdErr).ToNot(HaveOccurred())
		Expect(got).To(Equal(payload))
	})

	It("parses known codec names and aliases", func() {
		cases := map[string]compress.Algorithm{
			"":       compress.None,
			"gzip":   compress.Gzip,
			"gz":     compress.Gzip,
			"zstd":   compress.Zstd,
			"xz":     compress.Lzma2,
			"brotli": compress.Brotli,
		}
		for in, want := range cases {
			got, ok := compress.Parse(in)
			Expect(ok).To(BeTrue(), "Parse(%q)", in)
			Expect(got).To(Equal(want), "Parse(%q)", in)
		}

		_, ok := compress.Parse("not-a-codec")
		Expect(ok).To(BeFalse())
	})

	It("detects a gzip stream by its magic bytes", func() {
		payload := []byte("detect me please, this needs to be long enough to fill the sniff window")

		out, err := compress.Gzip.CompressBytes(payload, 6)
		Expect(err).ToNot(HaveOccurred())

		a, r := compress.Detect(bytes.NewReader(out))
		Expect(a).To(Equal(compress.Gzip))

		gr, err := a.Reader(r)
		Expect(err).ToNot(HaveOccurred())
		defer gr.Close()

		got, rdErr := io.ReadAll(gr)
		Expect(rdErr).ToNot(HaveOccurred())
		Expect(got).To(Equal(payload))
	})

	It("lists codecs in a stable order", func() {
		want := []string{"none", "zlib", "bzip2", "lzma", "gzip", "lz4", "zstd", "brotli", "snappy", "lzo", "lzma2"}
		Expect(compress.ListString()).To(Equal(want))
	})
})
