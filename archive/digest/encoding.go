package digest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse maps a digest name (container headers, config files) to its
// Algorithm. Unknown names return None, false.
func Parse(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, true
	case "md5":
		return MD5, true
	case "sha1":
		return SHA1, true
	case "sha256":
		return SHA256, true
	case "sha512":
		return SHA512, true
	case "sha384":
		return SHA384, true
	case "sha224":
		return SHA224, true
	case "blake2b":
		return BLAKE2b, true
	case "blake2s":
		return BLAKE2s, true
	case "sha3-256", "sha3_256":
		return SHA3_256, true
	case "sha3-512", "sha3_512":
		return SHA3_512, true
	case "sha3-224", "sha3_224":
		return SHA3_224, true
	case "sha3-384", "sha3_384":
		return SHA3_384, true
	case "ripemd160":
		return RIPEMD160, true
	case "whirlpool":
		return Whirlpool, true
	case "blake3":
		return BLAKE3, true
	case "xxh3":
		return XXH3, true
	case "xxh128":
		return XXH128, true
	case "crc32":
		return CRC32, true
	case "crc64":
		return CRC64, true
	default:
		return None, false
	}
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("digest: unknown algorithm %q", text)
	}
	*a = v
	return nil
}

func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := Parse(s)
	if !ok {
		return fmt.Errorf("digest: unknown algorithm %q", s)
	}
	*a = v
	return nil
}
