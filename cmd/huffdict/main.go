// Command huffdict compresses and decompresses files with a byte-oriented
// Huffman dictionary stored alongside the compressed data.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffdict"
	"github.com/chronos-tachyon/huffdict/stream"
	"github.com/chronos-tachyon/huffdict/treecodec"
)

// Version is set at link time with -ldflags "-X main.Version=...".
var Version = "unknown"

// Mode selects the direction of the command.
type Mode uint8

const (
	NotSpecified Mode = iota
	CompressMode
	DecompressMode
)

type config struct {
	mode           Mode
	inputPath      string
	outputPath     string
	dictionaryPath string
	format         treecodec.Format
	chunkSize      int
	verbose        bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffdict: ")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	cfg, err := parseArgs(fs, os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		log.Print(err)
		fmt.Fprintf(os.Stderr, "Try '%s -help' for more information.\n", os.Args[0])
		os.Exit(1)
	}

	opts := stream.Options{ChunkSize: cfg.chunkSize, Format: cfg.format}
	var stats stream.Stats
	switch cfg.mode {
	case CompressMode:
		stats, err = compressFile(cfg, opts)
	case DecompressMode:
		stats, err = decompressFile(cfg, opts)
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.verbose {
		p := message.NewPrinter(language.English)
		p.Fprintf(os.Stderr, "%d bytes in, %d bytes out, %d bits\n", stats.BytesIn, stats.BytesOut, stats.Bits)
	}
}

func parseArgs(fs *flag.FlagSet, args []string) (config, error) {
	cfg := config{chunkSize: stream.DefaultChunkSize}
	var modeStr, formatStr string
	var showVersion bool

	fs.StringVar(&cfg.inputPath, "i", "", "input `FILE`")
	fs.StringVar(&cfg.inputPath, "input", "", "input `FILE`")
	fs.StringVar(&cfg.outputPath, "o", "", "output `FILE`")
	fs.StringVar(&cfg.outputPath, "output", "", "output `FILE`")
	fs.StringVar(&modeStr, "m", "", "`MODE`: 'c' or 'k' for compression, 'd' for decompression")
	fs.StringVar(&modeStr, "t", "", "same as -m")
	fs.StringVar(&modeStr, "mode", "", "same as -m")
	fs.StringVar(&cfg.dictionaryPath, "d", "", "`FILE` to write the dictionary to, or read it from")
	fs.StringVar(&cfg.dictionaryPath, "s", "", "same as -d")
	fs.StringVar(&cfg.dictionaryPath, "dictionary", "", "same as -d")
	fs.StringVar(&formatStr, "format", "json", "dictionary `FORMAT`: json or binary")
	fs.IntVar(&cfg.chunkSize, "chunk", stream.DefaultChunkSize, "buffer size in `BYTES`")
	fs.BoolVar(&cfg.verbose, "verbose", false, "report sizes when done")
	fs.BoolVar(&showVersion, "v", false, "show the program's version")
	fs.BoolVar(&showVersion, "version", false, "show the program's version")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if showVersion {
		fmt.Fprintf(fs.Output(), "%s: version %s\n", fs.Name(), Version)
		return cfg, flag.ErrHelp
	}

	switch modeStr {
	case "c", "k":
		cfg.mode = CompressMode
	case "d":
		cfg.mode = DecompressMode
	case "":
		return cfg, errors.New("missing mode")
	default:
		return cfg, errors.Errorf("invalid mode %q", modeStr)
	}

	format, err := treecodec.ParseFormat(formatStr)
	if err != nil {
		return cfg, err
	}
	cfg.format = format

	if cfg.inputPath == "" || cfg.outputPath == "" || cfg.dictionaryPath == "" {
		return cfg, errors.New("input, output, and dictionary files are all required")
	}
	if cfg.chunkSize < stream.MinChunkSize {
		return cfg, errors.Errorf("chunk size must be at least %d", stream.MinChunkSize)
	}
	return cfg, nil
}

func compressFile(cfg config, opts stream.Options) (stream.Stats, error) {
	var stats stream.Stats

	input, err := os.Open(cfg.inputPath)
	if err != nil {
		return stats, errors.WithStack(err)
	}
	defer input.Close()

	var dict huffdict.Dictionary
	if _, err := stream.Train(&dict, input, opts); err != nil {
		return stats, err
	}
	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return stats, errors.WithStack(err)
	}

	output, err := os.Create(cfg.outputPath)
	if err != nil {
		return stats, errors.WithStack(err)
	}
	stats, err = stream.Compress(&dict, input, output, opts)
	if err2 := output.Close(); err == nil && err2 != nil {
		err = errors.WithStack(err2)
	}
	if err != nil {
		return stats, err
	}

	return stats, writeDictionary(cfg.dictionaryPath, &dict, opts.Format)
}

func decompressFile(cfg config, opts stream.Options) (stream.Stats, error) {
	var stats stream.Stats

	dict, err := readDictionary(cfg.dictionaryPath, opts.Format)
	if err != nil {
		return stats, err
	}

	input, err := os.Open(cfg.inputPath)
	if err != nil {
		return stats, errors.WithStack(err)
	}
	defer input.Close()

	output, err := os.Create(cfg.outputPath)
	if err != nil {
		return stats, errors.WithStack(err)
	}
	stats, err = stream.Decompress(dict, input, output, dict.Size(), opts)
	if err2 := output.Close(); err == nil && err2 != nil {
		err = errors.WithStack(err2)
	}
	return stats, err
}

func writeDictionary(path string, dict *huffdict.Dictionary, format treecodec.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	err = treecodec.Write(file, dict.Root(), format)
	if err2 := file.Close(); err == nil && err2 != nil {
		err = errors.WithStack(err2)
	}
	return err
}

func readDictionary(path string, format treecodec.Format) (*huffdict.Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	dict, err := treecodec.ReadDictionary(file, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dictionary %q", path)
	}
	return dict, nil
}
