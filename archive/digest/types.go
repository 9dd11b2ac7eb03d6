/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package digest is the integrity-digest registry: a tagged dispatch over
// hash algorithms, selected by their stable u8 identifiers, producing
// hex-encoded fingerprints over bytes or a file stream.
package digest

// Algorithm is the container format's digest discriminator. Values are
// part of the on-disk format and must never be renumbered.
type Algorithm uint8

const (
	None Algorithm = iota
	MD5
	SHA1
	SHA256
	SHA512
	SHA384
	BLAKE2b
	BLAKE2s
	SHA3_256
	SHA3_512
	RIPEMD160
	Whirlpool
	SHA224
	SHA3_224
	SHA3_384

	// Extension slots: the original 0-14 range is closed, these occupy
	// distinct identifiers beyond it.
	BLAKE3
	XXH3
	XXH128
	CRC32
	CRC64
)

func List() []Algorithm {
	return []Algorithm{
		None, MD5, SHA1, SHA256, SHA512, SHA384, BLAKE2b, BLAKE2s,
		SHA3_256, SHA3_512, RIPEMD160, Whirlpool, SHA224, SHA3_224, SHA3_384,
		BLAKE3, XXH3, XXH128, CRC32, CRC64,
	}
}

func (a Algorithm) IsNone() bool {
	return a == None
}

func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	case SHA384:
		return "sha384"
	case BLAKE2b:
		return "blake2b"
	case BLAKE2s:
		return "blake2s"
	case SHA3_256:
		return "sha3-256"
	case SHA3_512:
		return "sha3-512"
	case RIPEMD160:
		return "ripemd160"
	case Whirlpool:
		return "whirlpool"
	case SHA224:
		return "sha224"
	case SHA3_224:
		return "sha3-224"
	case SHA3_384:
		return "sha3-384"
	case BLAKE3:
		return "blake3"
	case XXH3:
		return "xxh3"
	case XXH128:
		return "xxh128"
	case CRC32:
		return "crc32"
	case CRC64:
		return "crc64"
	default:
		return "none"
	}
}
