/*
 * Package config loads batch Options files for hosts that script the
 * archive engine without a command line -- the CLI front end itself is
 * out of scope for this module. It never reads environment variables or
 * implicit config paths; the archive engine's operations stay
 * parameter-driven, this package only turns a file on disk into an
 * Options value before the caller passes it to archive.Create/Append/...
 */
package config

import (
	"github.com/spf13/viper"

	"github.com/sabouaram/przm/archive"
	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/digest"
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgConfig = liberr.MinPkgConfig

const (
	ErrorFileNotFound liberr.CodeError = iota + MinPkgConfig
	ErrorFileParse
	ErrorFileDecode
)

func init() {
	if liberr.ExistInMapMessage(ErrorFileNotFound) {
		panic("error code collision in przm/config")
	}
	liberr.RegisterIdFctMessage(ErrorFileNotFound, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorFileNotFound:
		return "options file not found"
	case ErrorFileParse:
		return "options file could not be parsed"
	case ErrorFileDecode:
		return "options file could not be decoded"
	default:
		return liberr.NullMessage
	}
}

// Options is the subset of archive.Options (plus the archive path and
// input list) that a batch job would otherwise pass as flags -- expressed
// as data so it can be loaded from YAML/JSON/TOML.
type Options struct {
	Archive         string   `mapstructure:"archive"`
	Inputs          []string `mapstructure:"inputs"`
	Codec           string   `mapstructure:"codec"`
	Level           int      `mapstructure:"level"`
	Digest          string   `mapstructure:"digest"`
	Exclude         []string `mapstructure:"exclude"`
	FullPath        bool     `mapstructure:"full_path"`
	IgnoreErrors    bool     `mapstructure:"ignore_errors"`
	Solid           bool     `mapstructure:"solid"`
	ThreadCount     int      `mapstructure:"thread_count"`
	NoOverwrite     bool     `mapstructure:"no_overwrite"`
	NoVerify        bool     `mapstructure:"no_verify"`
	NoPreserveProps bool     `mapstructure:"no_preserve_props"`
}

// LoadOptionsFile reads an Options value from the file at path. The format
// (YAML, JSON or TOML) is inferred from the extension by viper.
func LoadOptionsFile(path string) (Options, liberr.Error) {
	var out Options

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return out, ErrorFileNotFound.ErrorParent(err)
	}

	if err := v.Unmarshal(&out); err != nil {
		return out, ErrorFileDecode.ErrorParent(err)
	}

	return out, nil
}

// ToArchiveOptions resolves the string-typed codec/digest fields against
// the engine's registries and returns the archive.Options value a caller
// passes straight to Create/Append/Extract/Verify.
func (o Options) ToArchiveOptions() (archive.Options, liberr.Error) {
	var codecAlg compress.Algorithm
	if o.Codec != "" {
		alg, ok := compress.Parse(o.Codec)
		if !ok {
			return archive.Options{}, ErrorFileDecode.Error()
		}
		codecAlg = alg
	}

	var digestAlg digest.Algorithm
	if o.Digest != "" {
		alg, ok := digest.Parse(o.Digest)
		if !ok {
			return archive.Options{}, ErrorFileDecode.Error()
		}
		digestAlg = alg
	}

	return archive.Options{
		Codec:           codecAlg,
		Level:           o.Level,
		Digest:          digestAlg,
		Exclude:         o.Exclude,
		FullPath:        o.FullPath,
		IgnoreErrors:    o.IgnoreErrors,
		Solid:           o.Solid,
		ThreadCount:     o.ThreadCount,
		NoOverwrite:     o.NoOverwrite,
		NoVerify:        o.NoVerify,
		NoPreserveProps: o.NoPreserveProps,
	}, nil
}
