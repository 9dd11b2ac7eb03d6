package digest

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"hash/crc32"
	"hash/crc64"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/jzelinskie/whirlpool"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"

	liberr "github.com/sabouaram/przm/errors"
)

// New returns a fresh streaming hasher for a. Callers Write bytes to it
// and call Sum(nil) when done. None returns a nil hasher and no error.
func (a Algorithm) New() (hash.Hash, liberr.Error) {
	switch a {
	case None:
		return nil, nil

	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA224:
		return sha256.New224(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_224:
		return sha3.New224(), nil
	case SHA3_384:
		return sha3.New384(), nil
	case SHA3_512:
		return sha3.New512(), nil

	case BLAKE2b:
		h, err := blake2b.New512(nil)
		if err != nil {
			return nil, ErrorHashFailed.ErrorParent(err)
		}
		return h, nil
	case BLAKE2s:
		h, err := blake2s.New256(nil)
		if err != nil {
			return nil, ErrorHashFailed.ErrorParent(err)
		}
		return h, nil

	case RIPEMD160:
		return ripemd160.New(), nil
	case Whirlpool:
		return whirlpool.New(), nil

	case BLAKE3:
		return blake3.New(), nil
	case XXH3:
		return xxh3.New(), nil
	case XXH128:
		return newXXH128(), nil

	case CRC32:
		return crc32.NewIEEE(), nil
	case CRC64:
		return crc64.New(crc64.MakeTable(crc64.ISO)), nil

	default:
		return nil, ErrorUnknownDigest.Error()
	}
}

// xxh128Hash adapts zeebo/xxh3's one-shot 128-bit hash into a hash.Hash
// by buffering the input; the library exposes no incremental 128-bit
// state, only a one-shot Hash128 over a complete byte slice.
type xxh128Hash struct {
	buf bytes.Buffer
}

func newXXH128() hash.Hash { return &xxh128Hash{} }

func (h *xxh128Hash) Write(p []byte) (int, error) { return h.buf.Write(p) }
func (h *xxh128Hash) Reset()                      { h.buf.Reset() }
func (h *xxh128Hash) Size() int                   { return 16 }
func (h *xxh128Hash) BlockSize() int              { return 1 }

func (h *xxh128Hash) Sum(b []byte) []byte {
	v := xxh3.Hash128(h.buf.Bytes())
	var sum [16]byte
	binary.BigEndian.PutUint64(sum[0:8], v.Hi)
	binary.BigEndian.PutUint64(sum[8:16], v.Lo)
	return append(b, sum[:]...)
}

// Compute hashes data in one shot and returns its hex-encoded digest.
// digest_id = none yields an empty string, matching the container
// format's convention that no-digest entries carry no digest_hex.
func (a Algorithm) Compute(data []byte) (string, liberr.Error) {
	if a.IsNone() {
		return "", nil
	}

	h, err := a.New()
	if err != nil {
		return "", err
	}
	if _, werr := h.Write(data); werr != nil {
		return "", ErrorHashFailed.ErrorParent(werr)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ComputeStream hashes the full contents of r, for callers digesting a
// file without loading it entirely into memory first.
func (a Algorithm) ComputeStream(r io.Reader) (string, liberr.Error) {
	if a.IsNone() {
		return "", nil
	}

	h, err := a.New()
	if err != nil {
		return "", err
	}
	if _, cerr := io.Copy(h, r); cerr != nil {
		return "", ErrorHashFailed.ErrorParent(cerr)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
