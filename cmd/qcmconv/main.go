// Command qcmconv converts QCM Markdown quizzes to JSON, YAML, or the
// canonical Markdown form. It is thin glue over the qcmkit library: all
// parsing and serialization happens in the library, and qcmconv only moves
// bytes between files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/quizmd/qcmkit/config"
	"github.com/quizmd/qcmkit/export"
	"github.com/quizmd/qcmkit/markdown"
	"github.com/quizmd/qcmkit/qcm"
	"github.com/quizmd/qcmkit/watch"
)

func main() {
	var (
		inPath     = flag.String("in", "", "quiz file to convert (required unless -schema)")
		outPath    = flag.String("out", "", "output file or directory (default: stdout)")
		formatName = flag.String("format", "", "output format: markdown, json, or yaml")
		configPath = flag.String("config", "", "config file (.toml, .yaml, or .yml)")
		single     = flag.Bool("enforce-single", false, "reject questions with more than one correct answer")
		requireOne = flag.Bool("require-correct", false, "reject questions with no correct answer")
		watchMode  = flag.Bool("watch", false, "re-convert whenever the quiz file changes")
		schemaOnly = flag.Bool("schema", false, "print the questionnaire JSON Schema and exit")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	if *schemaOnly {
		schema, err := export.Schema()
		if err != nil {
			logger.Fatal("generate schema", "error", err)
		}
		fmt.Println(string(schema))
		return
	}

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("load config", "path", *configPath, "error", err)
		}
		cfg = loaded
		logger.Debug("config loaded", "path", *configPath, "format", cfg.Format)
	}

	if *single {
		cfg.EnforceSingle = true
	}
	if *requireOne {
		cfg.RequireAtLeastOneCorrect = true
	}
	if *formatName != "" {
		cfg.Format = *formatName
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		logger.Fatal("resolve format", "error", err)
	}

	if *watchMode {
		runWatch(logger, *inPath, cfg.Options(), format, cfg.Output)
		return
	}

	qn, err := markdown.ParseFile(*inPath, cfg.Options())
	if err != nil {
		logger.Fatal("parse quiz", "file", *inPath, "error", err)
	}

	if err := emit(qn, format, cfg.Output); err != nil {
		logger.Fatal("write output", "error", err)
	}
}

// runWatch re-converts the quiz on every save until interrupted.
func runWatch(logger *log.Logger, inPath string, opts qcm.Options, format export.Format, outPath string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching", "file", inPath, "format", format)

	w := watch.New(inPath, opts)
	for res := range w.Watch(ctx) {
		if res.Err != nil {
			logger.Error("quiz invalid", "file", inPath, "error", res.Err)
			continue
		}
		if err := emit(res.Questionnaire, format, outPath); err != nil {
			logger.Error("write output", "error", err)
			continue
		}
		logger.Info("converted",
			"questions", len(res.Questionnaire.Questions),
			"total_score", res.Questionnaire.TotalScore())
	}
}

// emit renders the questionnaire and persists it to the output target:
// stdout when empty, a generated filename inside a directory, or the
// exact path given.
func emit(qn *qcm.Questionnaire, format export.Format, outPath string) error {
	doc, err := export.Render(qn, format)
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err := os.Stdout.Write(doc.Data)
		return err
	}

	target := outPath
	if info, err := os.Stat(outPath); err == nil && info.IsDir() {
		target = filepath.Join(outPath, doc.Filename)
	}

	return doc.Persist(func(string, []byte) error {
		return os.WriteFile(target, doc.Data, 0644)
	})
}
