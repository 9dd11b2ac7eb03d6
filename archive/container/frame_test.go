package container_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/container"
)

var _ = Describe("Prefix", func() {
	It("round trips through WritePrefix/ReadPrefix", func() {
		buf := &bytes.Buffer{}
		Expect(container.WritePrefix(buf, container.FlagSolidFirstBlock)).To(Succeed())
		Expect(buf.Len()).To(Equal(container.PrefixSize))

		flags, err := container.ReadPrefix(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(flags).To(Equal(container.FlagSolidFirstBlock))
	})

	It("rejects a bad magic", func() {
		buf := bytes.NewBufferString("XXXX\x01\x00\x00")
		_, err := container.ReadPrefix(buf)
		Expect(err).To(HaveOccurred())
		Expect(err.IsCodeError(container.ErrorCorruptHeader)).To(BeTrue())
	})
})

var _ = Describe("Lone header", func() {
	It("round trips a full entry descriptor", func() {
		e := container.Entry{
			Path:             "a/b/file.txt",
			CodecID:          6,
			Level:            3,
			DigestID:         3,
			DigestHex:        "deadbeef",
			UncompressedSize: 1024,
			CompressedSize:   512,
			CreationTime:     1700000000,
			ModificationTime: 1700000100,
			Permissions:      0o644,
			UID:              1000,
			GID:              1000,
		}

		buf := &bytes.Buffer{}
		Expect(container.WriteLoneHeader(buf, e)).To(Succeed())

		got, err := container.ReadLoneHeader(buf, nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(got.Path).To(Equal(e.Path))
		Expect(got.DigestHex).To(Equal(e.DigestHex))
		Expect(got.UncompressedSize).To(Equal(e.UncompressedSize))
		Expect(got.Kind).To(Equal(container.Lone))
	})
})

var _ = Describe("Solid block", func() {
	It("round trips header and member metadata", func() {
		members := []container.Entry{
			{Path: "a.txt", DigestID: 1, DigestHex: "aa", UncompressedSize: 3},
			{Path: "b.txt", DigestID: 1, DigestHex: "bb", UncompressedSize: 5},
		}

		metaBuf := &bytes.Buffer{}
		for _, m := range members {
			Expect(container.WriteSolidMemberMeta(metaBuf, m)).To(Succeed())
		}

		buf := &bytes.Buffer{}
		header := container.SolidBlockHeader{CodecID: 6, Level: 3, Metadata: metaBuf.Bytes()}
		Expect(container.WriteSolidBlockHeader(buf, header)).To(Succeed())

		gotHeader, err := container.ReadSolidBlockHeader(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(gotHeader.CodecID).To(Equal(uint8(6)))
		Expect(gotHeader.Level).To(Equal(uint8(3)))

		metaReader := bytes.NewReader(gotHeader.Metadata)
		for i, want := range members {
			got, err := container.ReadSolidMemberMeta(metaReader)
			Expect(err).ToNot(HaveOccurred(), "member %d", i)
			Expect(got.Path).To(Equal(want.Path), "member %d", i)
			Expect(got.DigestHex).To(Equal(want.DigestHex), "member %d", i)
			Expect(got.Kind).To(Equal(container.SolidMember), "member %d", i)
		}
	})
})
