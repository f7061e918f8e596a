// Program match prints the Literal/Copy decomposition of its input.
//
// Usage:
//
//	match [options] -text <text>
//	match [options] <file>...
//
// The short flags -t, -s, -b, -d and -f are kept for old scripts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/command"
	"github.com/creachadair/taskgroup"
	"github.com/michaeljclark/match"
)

type settings struct {
	// Input
	Text    string
	HasText bool // -text was given, possibly empty
	Files   []string
	Split   string
	Runes   bool

	// Matcher
	Bits       int
	MinMatch   int
	MaxMatch   int
	Overlap    bool
	Exhaustive bool
	Partition  bool
	SearchLen  int
	MaxDist    int

	// Output
	Verbose bool
	Debug   bool
	Check   bool
	Output  string
	Jobs    int
}

func (s *settings) config() match.Config {
	return match.Config{
		HashBits:    s.Bits,
		MinMatch:    s.MinMatch,
		MaxMatch:    s.MaxMatch,
		Overlap:     s.Overlap,
		Exhaustive:  s.Exhaustive,
		SearchLen:   s.SearchLen,
		MaxDistance: s.MaxDist,
	}
}

func main() {
	if err := command.Run(tool.NewEnv(&settings{}), os.Args[1:]); err != nil {
		if errors.Is(err, command.ErrUsage) {
			os.Exit(2)
		}
		log.Fatalf("Error: %v", err)
	}
}

var tool = &command.C{
	Name: filepath.Base(os.Args[0]),
	Usage: `[options] -text <text>
[options] <file>...`,
	Help: `Find recurring substrings and print the input as Literal and Copy tokens.

Each input is decomposed by its own matcher. With several files, they are
processed in parallel and reported in the order given.

The MATCH_HASH_BITS environment variable sets the default for -bits.

Older flag names are accepted as short forms: -t for -text, -s for -split,
-b for -bits, -d for -debug, and -f <file> (repeatable) for a file argument.
`,

	SetFlags: func(env *command.Env, fs *flag.FlagSet) {
		cfg := env.Config.(*settings)
		bits := 15
		if v, err := strconv.Atoi(os.Getenv("MATCH_HASH_BITS")); err == nil {
			bits = v
		}
		setText := func(s string) error {
			cfg.Text, cfg.HasText = s, true
			return nil
		}
		addFile := func(s string) error {
			cfg.Files = append(cfg.Files, s)
			return nil
		}
		fs.Func("text", "Symbols from this argument", setText)
		fs.Func("t", "Short for -text", setText)
		fs.Func("f", "Read symbols from this file (repeatable)", addFile)
		fs.StringVar(&cfg.Split, "split", "", "Split input into symbol groups at any of these characters")
		fs.StringVar(&cfg.Split, "s", "", "Short for -split")
		fs.BoolVar(&cfg.Runes, "runes", false, "Match Unicode code points instead of bytes")
		fs.IntVar(&cfg.Bits, "bits", bits, "Hash table size (log2)")
		fs.IntVar(&cfg.Bits, "b", bits, "Short for -bits")
		fs.IntVar(&cfg.MinMatch, "min", 3, "Minimum copy length")
		fs.IntVar(&cfg.MaxMatch, "max", 8, "Longest window hashed per position")
		fs.BoolVar(&cfg.Overlap, "overlap", false, "Allow copies to overlap the data they produce")
		fs.BoolVar(&cfg.Exhaustive, "exhaustive", false, "Search every window length at every position")
		fs.IntVar(&cfg.SearchLen, "search", 0, "Candidates verified per hash chain (0 for all)")
		fs.IntVar(&cfg.MaxDist, "distance", 0, "Maximum copy distance (0 for no limit)")
		fs.BoolVar(&cfg.Partition, "partition", false, "Start a new token at each symbol group")
		fs.BoolVar(&cfg.Verbose, "v", false, "Print the input and every token")
		fs.BoolVar(&cfg.Debug, "debug", false, "Print search counters and token fingerprint")
		fs.BoolVar(&cfg.Debug, "d", false, "Short for -debug")
		fs.BoolVar(&cfg.Check, "check", false, "Verify that the tokens replay to the input")
		fs.StringVar(&cfg.Output, "o", "", "Write the report to this file instead of stdout")
		fs.IntVar(&cfg.Jobs, "jobs", runtime.NumCPU(), "Maximum number of files processed at once")
	},

	Run: runMatch,
}

type input struct {
	name string
	path string // if set, data is read from this file
	data []byte
}

func runMatch(env *command.Env, args []string) error {
	cfg := env.Config.(*settings)
	if _, err := match.New[byte, uint32](cfg.config()); err != nil {
		return err
	}

	var inputs []input
	if cfg.HasText {
		inputs = append(inputs, input{name: "text", data: []byte(cfg.Text)})
	}
	for _, path := range append(cfg.Files, args...) {
		inputs = append(inputs, input{name: path, path: path})
	}
	if len(inputs) == 0 {
		return errors.New("must specify -text or at least one file")
	}

	reports := make([][]byte, len(inputs))
	g, run := taskgroup.New(nil).Limit(max(cfg.Jobs, 1))
	for i, in := range inputs {
		i, in := i, in
		run(func() error {
			if in.path != "" {
				data, err := os.ReadFile(in.path)
				if err != nil {
					return err
				}
				in.data = data
			}
			r, err := analyze(cfg, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var out []byte
	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				out = append(out, '\n')
			}
			out = fmt.Appendf(out, "==> %s <==\n", inputs[i].name)
		}
		out = append(out, r...)
	}
	if cfg.Output != "" {
		return atomicfile.WriteData(cfg.Output, out, 0644)
	}
	_, err := os.Stdout.Write(out)
	return err
}
