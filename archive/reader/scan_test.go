package reader_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/reader"
)

type memberBuf struct {
	data []byte
}

func (m *memberBuf) Write(p []byte) (int, error) {
	m.data = append(m.data, p...)
	return len(p), nil
}

var _ = Describe("Scan", func() {
	It("returns no entries for a prefix-only archive", func() {
		path := filepath.Join(GinkgoT().TempDir(), "empty.przm")

		f, err := os.Create(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(container.WritePrefix(f, 0)).To(Succeed())
		Expect(f.Close()).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(info.Size()).To(Equal(int64(container.PrefixSize)))

		entries, rerr := reader.Scan(path)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("scans a non-solid archive back to its entries", func() {
		path := filepath.Join(GinkgoT().TempDir(), "a.przm")

		payload := []byte("hello, przm")
		compressed, cerr := compress.Zstd.CompressBytes(payload, 3)
		Expect(cerr).ToNot(HaveOccurred())
		sum, derr := digest.SHA256.Compute(payload)
		Expect(derr).ToNot(HaveOccurred())

		f, err := os.Create(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(container.WritePrefix(f, 0)).To(Succeed())

		e := container.Entry{
			Path:             "greeting.txt",
			CodecID:          uint8(compress.Zstd),
			Level:            3,
			DigestID:         uint8(digest.SHA256),
			DigestHex:        sum,
			UncompressedSize: uint64(len(payload)),
			CompressedSize:   uint64(len(compressed)),
		}
		Expect(container.WriteLoneHeader(f, e)).To(Succeed())
		_, err = f.Write(compressed)
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Close()).To(Succeed())

		entries, rerr := reader.Scan(path)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))

		got := entries[0]
		Expect(got.Path).To(Equal("greeting.txt"))
		Expect(got.DigestHex).To(Equal(sum))
		Expect(got.UncompressedSize).To(Equal(uint64(len(payload))))
		Expect(got.Kind).To(Equal(container.Lone))

		back, derr := compress.Algorithm(got.CodecID).DecompressBytes(compressed, len(payload))
		Expect(derr).ToNot(HaveOccurred())
		Expect(back).To(Equal(payload))
	})

	It("scans a solid block back to its member entries", func() {
		path := filepath.Join(GinkgoT().TempDir(), "solid.przm")

		members := []struct {
			path string
			data []byte
		}{
			{"a.txt", []byte("aaaa")},
			{"b.txt", []byte("bbbbbb")},
		}

		var raw []byte

		f, err := os.Create(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(container.WritePrefix(f, container.FlagSolidFirstBlock)).To(Succeed())

		metaBytes := []byte{}
		for _, m := range members {
			raw = append(raw, m.data...)
		}

		for _, m := range members {
			sum, derr := digest.SHA1.Compute(m.data)
			Expect(derr).ToNot(HaveOccurred())
			entry := container.Entry{
				Path:             m.path,
				DigestID:         uint8(digest.SHA1),
				DigestHex:        sum,
				UncompressedSize: uint64(len(m.data)),
			}
			mb := &memberBuf{}
			Expect(container.WriteSolidMemberMeta(mb, entry)).To(Succeed())
			metaBytes = append(metaBytes, mb.data...)
		}

		compressed, cerr := compress.Zstd.CompressBytes(raw, 3)
		Expect(cerr).ToNot(HaveOccurred())

		header := container.SolidBlockHeader{CodecID: uint8(compress.Zstd), Level: 3, Metadata: metaBytes}
		Expect(container.WriteSolidBlockHeader(f, header)).To(Succeed())
		_, err = f.Write(compressed)
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Close()).To(Succeed())

		entries, rerr := reader.Scan(path)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(2))

		decompressed, derr := compress.Algorithm(entries[0].CodecID).DecompressBytes(compressed, len(raw))
		Expect(derr).ToNot(HaveOccurred())

		for i, m := range members {
			e := entries[i]
			Expect(e.Kind).To(Equal(container.SolidMember), "entry %d", i)
			Expect(e.Path).To(Equal(m.path), "entry %d", i)
			slice := decompressed[e.DataOffset : e.DataOffset+int64(e.UncompressedSize)]
			Expect(slice).To(Equal(m.data), "entry %d", i)
		}
	})
})
