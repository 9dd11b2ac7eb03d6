package pathutil_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/przm/archive/pathutil"
)

func writeFiles(dir string, names ...string) {
	for _, n := range names {
		p := filepath.Join(dir, n)
		Expect(os.MkdirAll(filepath.Dir(p), 0o755)).To(Succeed())
		Expect(os.WriteFile(p, []byte("x"), 0o644)).To(Succeed())
	}
}

var _ = Describe("Walk", func() {
	It("expands directories into their files", func() {
		dir := GinkgoT().TempDir()
		writeFiles(dir, "a.txt", "sub/b.txt", "sub/deep/c.txt")

		got, err := pathutil.Walk([]string{dir})
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(HaveLen(3))
	})
})

var _ = Describe("Excluded", func() {
	It("matches glob patterns", func() {
		cases := []struct {
			path    string
			pattern string
			want    bool
		}{
			{"a/b/report.log", "*.log", true},
			{"a/b/report.txt", "*.log", false},
			{"a/b1c/x", "b?c", true},
			{"some/path/x", "nomatch*", false},
		}

		for _, c := range cases {
			got, err := pathutil.Excluded(c.path, []string{c.pattern})
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(c.want), "Excluded(%q, %q)", c.path, c.pattern)
		}
	})

	It("matches a literal directory prefix", func() {
		got, err := pathutil.Excluded("/data/cache/x.txt", []string{"/data/cache"})
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(BeTrue())
	})
})

var _ = Describe("ArchivePath", func() {
	It("rebases to the longest matching input prefix", func() {
		dir := GinkgoT().TempDir()
		writeFiles(dir, "proj/src/main.go")

		file := filepath.Join(dir, "proj", "src", "main.go")
		inputs := []string{filepath.Join(dir, "proj")}

		got := pathutil.ArchivePath(file, inputs, false)
		want := filepath.ToSlash(filepath.Join("proj", "src", "main.go"))
		Expect(got).To(Equal(want))
	})

	It("returns the full slash path when requested", func() {
		file := filepath.Join(string(filepath.Separator), "tmp", "a.txt")
		got := pathutil.ArchivePath(file, nil, true)
		Expect(got).ToNot(BeEmpty())
		Expect(got[0]).To(Equal(byte('/')))
	})
})

var _ = Describe("AlreadyCompressed", func() {
	It("recognizes known already-compressed extensions case-insensitively", func() {
		Expect(pathutil.AlreadyCompressed("photo.JPG")).To(BeTrue())
		Expect(pathutil.AlreadyCompressed("notes.txt")).To(BeFalse())
	})
})
