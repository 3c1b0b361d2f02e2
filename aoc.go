// Package aoc holds the shared plumbing for the Advent of Code solutions:
// the puzzle runner, input fetching and the grid, graph and math helpers the
// individual days lean on.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples collects the want= samples from the doc comments of every
// non-test Go file in src, keyed by method name.
func extractSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	slices.Sort(names)
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		extractFileSamples(name, MustGet(fs.ReadFile(src, name)), samples)
	}
	return samples
}

func extractFileSamples(name string, src []byte, samples map[string]sample) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing %s to extract samples: %v", name, err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
}

// Puzzle is embedded by solvers. The runner points it at the day and part
// being solved before each call.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     Config
	solver  partSolver
	samples map[string]sample
	input   []byte // fixed input, see NewPuzzle
	fetched []byte
}

// NewPuzzle returns a Puzzle in sample mode whose input is always input.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		input:      []byte(input),
	}
}

func (p *Puzzle) Description() ([]byte, error) {
	return fileOrFetch(p.cfg, p.cfg.cachePath(p.year, p.day.day, "html"), p.cfg.dayURL(p.year, p.day.day))
}

// Input returns the sample input in sample mode and the puzzle input
// otherwise. It panics if the puzzle input cannot be loaded; the runner
// loads it up front, see loadInput.
func (p *Puzzle) Input() []byte {
	if p.input != nil {
		return p.input
	}
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	MustDo(p.loadInput())
	return p.fetched
}

// loadInput reads the puzzle input from the cache, fetching it if needed.
func (p *Puzzle) loadInput() error {
	if p.fetched != nil {
		return nil
	}
	b, err := fileOrFetch(p.cfg, p.cfg.cachePath(p.year, p.day.day, "input"), p.cfg.dayURL(p.year, p.day.day)+"/input")
	if err != nil {
		return err
	}
	p.fetched = b
	return nil
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the input split into lines, without the trailing newline.
func (p *Puzzle) Lines() []string {
	in := strings.TrimRight(string(p.Input()), "\n")
	if in == "" {
		return nil
	}
	return strings.Split(in, "\n")
}

// Blocks returns the blank-line separated paragraphs of the input.
func (p *Puzzle) Blocks() []string {
	in := strings.TrimSpace(strings.ReplaceAll(string(p.Input()), "\r\n", "\n"))
	return strings.Split(in, "\n\n")
}

// Grid returns the input as a grid of bytes, one row per line.
func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(p.Lines())
}

func (p *Puzzle) Debug(v ...any) {
	logger.Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		logger.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

func (p *Puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. x must be a
// pointer to a struct; the methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

type runOptions struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	describe   bool
	configPath string
}

// bind points slvr's embedded *Puzzle at p.
func bind(slvr any, p *Puzzle) {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() {
		log.Fatalf("%T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
}

func runDay(slvr any, p *Puzzle, opts runOptions) error {
	fmt.Println(dayHeader(p.day.day))
	bind(slvr, p)
	if opts.describe {
		text, err := p.DescriptionText()
		if err != nil {
			return fmt.Errorf("day %d description: %w", p.day.day, err)
		}
		fmt.Println(text)
	}
	for _, ps := range p.day.parts {
		p.solver = ps
		if opts.part != "" && ps.Part != opts.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && opts.onlySample {
				continue
			} else if sm && (opts.skipSample || !p.hasSample()) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				if err := p.loadInput(); err != nil {
					return fmt.Errorf("day %d input: %w", p.day.day, err)
				}
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				want := p.Sample().want
				if fmt.Sprint(got) != want {
					fmt.Println(sampleFail(ps.Part, got, want))
					return nil
				}
				fmt.Println(samplePass(ps.Part, got, took))
			} else {
				fmt.Println(answer(ps.Part, got, took))
			}
		}
	}
	return nil
}

func run(year int, src fs.FS, slvr any, opts runOptions) error {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	logger = newLogger(opts.debug)
	defer logger.Sync()

	samples := extractSamples(src)
	days := extractMethods(slvr)
	newPuzzle := func(d day) *Puzzle {
		return &Puzzle{
			year:    year,
			day:     d,
			cfg:     cfg,
			samples: samples,
		}
	}

	if opts.day != -1 {
		d, ok := days[opts.day]
		if !ok {
			return fmt.Errorf("no day %d", opts.day)
		}
		return runDay(slvr, newPuzzle(d), opts)
	}

	for _, n := range slices.Sorted(maps.Keys(days)) {
		if err := runDay(slvr, newPuzzle(days[n]), opts); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// Command returns the command line interface for running slvr's puzzles of
// the given year. src holds the solver's Go sources, which carry the samples.
func Command(year int, src fs.FS, slvr any) *cobra.Command {
	opts := runOptions{day: -1}
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.onlySample && opts.skipSample {
				return fmt.Errorf("--sample and --skip-sample are mutually exclusive")
			}
			return run(year, src, slvr, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.day, "day", -1, "day to run; all days when unset")
	f.StringVar(&opts.part, "part", "", "part to run")
	f.BoolVar(&opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.debug, "debug", false, "debug mode")
	f.BoolVar(&opts.describe, "describe", false, "print the puzzle description before solving")
	f.StringVar(&opts.configPath, "config", "", "config file (default "+defaultConfigFile+")")
	return cmd
}

// Run is the main function of a solver binary.
func Run(year int, src fs.FS, slvr any) {
	cobra.CheckErr(Command(year, src, slvr).Execute())
}

// SampleRun is one part of a solver together with its sample.
type SampleRun struct {
	Name  string // method name, e.g. D5p2
	Want  string
	Solve func() any
}

// SampleRuns returns a SampleRun for every part of slvr that has a sample in
// src, ordered by day and part. Solve runs the part in sample mode.
func SampleRuns(src fs.FS, slvr any) []SampleRun {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	var runs []SampleRun
	for _, n := range slices.Sorted(maps.Keys(days)) {
		for _, ps := range days[n].parts {
			p := &Puzzle{
				day:        days[n],
				samples:    samples,
				solver:     ps,
				SampleMode: true,
			}
			if !p.hasSample() {
				continue
			}
			runs = append(runs, SampleRun{
				Name: ps.Name,
				Want: p.Sample().want,
				Solve: func() any {
					bind(slvr, p)
					return ps.fn()
				},
			})
		}
	}
	return runs
}

var logger = zap.NewNop().Sugar()

func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return MustGet(cfg.Build()).Sugar()
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without prefix. It exits if s does not start with
// prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
