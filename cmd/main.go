// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gmcaixeta/PrivacyAware/internal/batch"
	"github.com/gmcaixeta/PrivacyAware/internal/config"
	"github.com/gmcaixeta/PrivacyAware/internal/engine"
	"github.com/gmcaixeta/PrivacyAware/internal/help"
	"github.com/gmcaixeta/PrivacyAware/internal/observability"
	"github.com/gmcaixeta/PrivacyAware/internal/preprocessors"
	"github.com/gmcaixeta/PrivacyAware/internal/recognizer"
	"github.com/gmcaixeta/PrivacyAware/internal/trainingdata"
	"github.com/gmcaixeta/PrivacyAware/internal/version"
	"github.com/gmcaixeta/PrivacyAware/internal/web"

	"github.com/gmcaixeta/PrivacyAware/internal/formatters"
	_ "github.com/gmcaixeta/PrivacyAware/internal/formatters/csv"
	_ "github.com/gmcaixeta/PrivacyAware/internal/formatters/json"
	_ "github.com/gmcaixeta/PrivacyAware/internal/formatters/text"
	_ "github.com/gmcaixeta/PrivacyAware/internal/formatters/yaml"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// cliFlags holds resolved command line flag values
type cliFlags struct {
	text        string
	inputFile   string
	batchFile   string
	outputFile  string
	configFile  string
	profileName string

	format     string
	recognizer string
	textColumn string
	workers    int

	verbose bool
	debug   bool
	noColor bool
	quiet   bool

	generateData int
	seed         int64
	evaluateFile string
	testSplit    float64

	listProfiles bool
	listFormats  bool
	helpTopic    string
	showHelp     bool
	showVersion  bool

	webMode bool
	webPort string
}

func main() {
	// Optional .env file for local development (ignored when absent)
	_ = godotenv.Load()

	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	helpSystem := help.NewSystem(flags.noColor)
	if flags.showHelp {
		flag.Usage()
		fmt.Println()
		helpSystem.ShowTopics(os.Stdout)
		return
	}
	if flags.helpTopic != "" {
		if err := helpSystem.ShowTopic(os.Stdout, flags.helpTopic); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if flags.listFormats {
		helpSystem.ShowFormats(os.Stdout)
		return
	}

	// Auto-detect non-interactive environment
	if !term.IsTerminal(int(os.Stderr.Fd())) || flags.quiet || os.Getenv("CI") != "" {
		flags.noColor = true
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	applyProfile(cfg, &flags)

	if flags.listProfiles {
		names := cfg.ListProfiles()
		if len(names) == 0 {
			fmt.Println("No profiles defined.")
			return
		}
		for _, name := range names {
			p := cfg.GetProfile(name)
			fmt.Printf("%s: %s\n", name, p.Description)
		}
		return
	}

	observer := buildObserver(flags)
	eng, err := buildEngine(cfg, flags, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flags.webMode:
		server := web.NewWebServer(flags.webPort, eng, observer)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case flags.generateData > 0:
		if err := runGenerate(flags); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case flags.evaluateFile != "":
		if err := runEvaluate(eng, flags); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case flags.batchFile != "":
		if err := runBatch(eng, observer, flags); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case flags.text != "" || flags.inputFile != "":
		if err := runClassify(eng, flags); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Error: no input given. Use -text, -file, -batch, -generate-data, -evaluate or -web.")
		flag.Usage()
		os.Exit(1)
	}
}

func parseFlags() cliFlags {
	text := flag.String("text", "", "Text to classify directly")
	inputFile := flag.String("file", "", "Path to an input file (txt, md, csv, pdf)")
	batchFile := flag.String("batch", "", "Path to a CSV file with a text column to classify row by row")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	format := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	recognizerName := flag.String("recognizer", "", "Person name recognizer: heuristic or none")
	textColumn := flag.String("text-column", "", "Header name of the text column in batch mode (default: text)")
	workers := flag.Int("workers", 0, "Worker count for batch mode (default: number of CPUs)")
	verbose := flag.Bool("verbose", false, "Display per-entity detail")
	debug := flag.Bool("debug", false, "Enable operation logging to stderr")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts and CI/CD)")
	generateData := flag.Int("generate-data", 0, "Generate N balanced labeled examples per intent and exit")
	seed := flag.Int64("seed", 42, "Random seed for data generation and splitting")
	evaluateFile := flag.String("evaluate", "", "Path to a labeled JSON dataset to evaluate the engine against")
	testSplit := flag.Float64("test-split", 0.2, "Fraction of generated data reserved for the test set")
	listFormats := flag.Bool("list-formats", false, "List available output formats")
	helpTopic := flag.String("help-topic", "", "Show detailed help for a decision layer")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	webMode := flag.Bool("web", false, "Start API server mode instead of CLI classification")
	webPort := flag.String("port", "8080", "Port for API server (default: 8080)")

	flag.Parse()

	return cliFlags{
		text:         *text,
		inputFile:    *inputFile,
		batchFile:    *batchFile,
		outputFile:   *outputFile,
		configFile:   *configFile,
		profileName:  *profileName,
		format:       *format,
		recognizer:   *recognizerName,
		textColumn:   *textColumn,
		workers:      *workers,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
		quiet:        *quiet,
		generateData: *generateData,
		seed:         *seed,
		evaluateFile: *evaluateFile,
		testSplit:    *testSplit,
		listProfiles: *listProfiles,
		listFormats:  *listFormats,
		helpTopic:    *helpTopic,
		showHelp:     *showHelp,
		showVersion:  *showVersion,
		webMode:      *webMode,
		webPort:      *webPort,
	}
}

// applyProfile resolves flag defaults from config and the selected
// profile. Explicit flags always win.
func applyProfile(cfg *config.Config, flags *cliFlags) {
	defaults := cfg.Defaults
	if flags.profileName != "" {
		if p := cfg.GetProfile(flags.profileName); p != nil {
			defaults.Format = p.Format
			defaults.Verbose = p.Verbose
			defaults.Debug = p.Debug
			defaults.NoColor = p.NoColor
			defaults.Recognizer = p.Recognizer
		} else {
			fmt.Fprintf(os.Stderr, "Warning: profile %q not found in config\n", flags.profileName)
		}
	}

	if flags.format == "" {
		flags.format = defaults.Format
	}
	if flags.format == "" {
		flags.format = "text"
	}
	if flags.recognizer == "" {
		flags.recognizer = defaults.Recognizer
	}
	flags.verbose = flags.verbose || defaults.Verbose
	flags.debug = flags.debug || defaults.Debug
	flags.noColor = flags.noColor || defaults.NoColor
}

func buildObserver(flags cliFlags) *observability.Observer {
	level := observability.LevelOff
	if flags.debug {
		level = observability.LevelDebug
	}
	return observability.NewObserver(level, os.Stderr)
}

func buildEngine(cfg *config.Config, flags cliFlags, observer *observability.Observer) (*engine.Engine, error) {
	var rec recognizer.Recognizer
	switch flags.recognizer {
	case "", "heuristic":
		rec = recognizer.NewHeuristic()
	case "none":
		rec = recognizer.Null{}
	default:
		return nil, fmt.Errorf("unknown recognizer %q (want heuristic or none)", flags.recognizer)
	}

	return engine.New(cfg.BuildLexicons(), rec, observer, cfg.EngineOptions())
}

func runClassify(eng *engine.Engine, flags cliFlags) error {
	var results []formatters.Result

	if flags.text != "" {
		results = append(results, formatters.Result{
			Source:   "-",
			Document: eng.ClassifyText(flags.text),
		})
	}

	if flags.inputFile != "" {
		content, err := preprocessors.ExtractText(flags.inputFile)
		if err != nil {
			return err
		}
		results = append(results, formatters.Result{
			Source:   content.Filename,
			Document: eng.ClassifyText(content.Text),
		})
	}

	output, err := formatters.Export(flags.format, results, formatters.FormatterOptions{
		Verbose: flags.verbose,
		NoColor: flags.noColor,
	})
	if err != nil {
		return err
	}
	return writeOutput(flags.outputFile, output)
}

func runBatch(eng *engine.Engine, observer *observability.Observer, flags cliFlags) error {
	in, err := os.Open(flags.batchFile)
	if err != nil {
		return fmt.Errorf("failed to open batch input: %w", err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if flags.outputFile != "" {
		f, err := os.Create(flags.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	opts := batch.Options{TextColumn: flags.textColumn, Workers: flags.workers}
	if !flags.quiet && flags.outputFile != "" {
		opts.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rClassified %d/%d rows", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	processor := batch.NewProcessor(eng, observer)
	return processor.Process(context.Background(), in, out, opts)
}

func runGenerate(flags cliFlags) error {
	gen := trainingdata.NewGenerator(flags.seed)
	examples := gen.Generate(flags.generateData, flags.generateData)

	if flags.outputFile == "" {
		return trainingdata.NewDataset(examples).WriteTo(os.Stdout)
	}

	if flags.testSplit > 0 {
		train, test := trainingdata.Split(examples, flags.testSplit, flags.seed)
		testFile := splitFileName(flags.outputFile)
		if err := trainingdata.NewDataset(train).Save(flags.outputFile); err != nil {
			return err
		}
		if err := trainingdata.NewDataset(test).Save(testFile); err != nil {
			return err
		}
		if !flags.quiet {
			fmt.Printf("Wrote %d train examples to %s and %d test examples to %s\n",
				len(train), flags.outputFile, len(test), testFile)
		}
		return nil
	}

	if err := trainingdata.NewDataset(examples).Save(flags.outputFile); err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Printf("Wrote %d examples to %s\n", len(examples), flags.outputFile)
	}
	return nil
}

// splitFileName derives the held-out test file path from the train file
// path: dataset.json becomes dataset_test.json.
func splitFileName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_test" + ext
}

func runEvaluate(eng *engine.Engine, flags cliFlags) error {
	dataset, err := trainingdata.Load(flags.evaluateFile)
	if err != nil {
		return err
	}

	examples := dataset.Data.CommonExamples
	if len(examples) == 0 {
		return fmt.Errorf("dataset %s has no examples", flags.evaluateFile)
	}

	evaluation := trainingdata.Evaluate(eng, examples)

	if strings.EqualFold(flags.format, "json") {
		return writeJSONOutput(flags.outputFile, evaluation)
	}

	var sb strings.Builder
	evaluation.WriteReport(&sb)
	return writeOutput(flags.outputFile, sb.String())
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeJSONOutput(path string, payload any) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(payload)
}
