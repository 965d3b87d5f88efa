// Command reviewlens scores a batch of customer reviews and prints the
// analysis as JSON or as a plain-text report.
//
// Reviews are read from a file or stdin and separated by blank lines:
//
//	reviewlens -in reviews.txt -format text
//	reviewlens -sample
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/reviewlens"
	"github.com/tsawler/reviewlens/internal/config"
	"github.com/tsawler/reviewlens/internal/logging"
)

var errNoReviews = errors.New("no reviews supplied")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("reviewlens failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("reviewlens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "file to read reviews from (default stdin)")
	sample := fs.Bool("sample", false, "analyze the built-in sample reviews")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: json or text")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "reviews scored concurrently")
	fs.IntVar(&cfg.NegationWindow, "negation-window", cfg.NegationWindow, "tokens a negation stays active (0 = until next sentiment word)")
	fs.StringVar(&cfg.LexiconPath, "lexicon", cfg.LexiconPath, "JSON lexicon extension file")
	fs.BoolVar(&cfg.Punkt, "punkt", cfg.Punkt, "use the Punkt sentence segmenter for key phrases")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.InitLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	reviews, err := loadReviews(*in, *sample, stdin)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return errNoReviews
	}

	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	result, err := analyzer.AnalyzeContext(ctx, reviews)
	if err != nil {
		return err
	}

	if cfg.Format == "text" {
		return writeReport(stdout, result)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func loadReviews(path string, sample bool, stdin io.Reader) ([]reviewlens.Review, error) {
	if sample {
		return reviewlens.SampleReviews(), nil
	}

	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviewlens.ParseReviews(string(data)), nil
}

func newAnalyzer(cfg *config.Config, logger *slog.Logger) (*reviewlens.Analyzer, error) {
	opts := []reviewlens.Option{
		reviewlens.WithWorkers(cfg.Workers),
		reviewlens.WithNegationWindow(cfg.NegationWindow),
		reviewlens.WithLogger(logger),
	}

	if cfg.LexiconPath != "" {
		lexicon, err := reviewlens.LexiconFromFile(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, reviewlens.WithLexicon(lexicon))
	}

	if cfg.Punkt {
		segmenter, err := reviewlens.NewPunktSegmenter()
		if err != nil {
			return nil, err
		}
		opts = append(opts, reviewlens.WithSegmenter(segmenter))
	}

	return reviewlens.NewAnalyzer(opts...), nil
}
