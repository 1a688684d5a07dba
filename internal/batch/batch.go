package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/remiges-tech/logharbour/logharbour"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jung/hannum/internal/config"
	"github.com/jung/hannum/internal/lock"
	"github.com/jung/hannum/internal/numeral"
)

// Options configures a batch run
type Options struct {
	Input     string
	Encoding  string
	Format    string
	OutputDir string
	LockFile  string
	Logger    *logharbour.Logger
}

// Entry is the conversion result of one input line
type Entry struct {
	Line    int              `json:"line" yaml:"line"`
	Input   string           `json:"input" yaml:"input"`
	Value   *float64         `json:"value,omitempty" yaml:"value,omitempty"`
	Formats *numeral.Formats `json:"formats,omitempty" yaml:"formats,omitempty"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the document written to the output directory
type Report struct {
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Converted   int       `json:"converted" yaml:"converted"`
	Failed      int       `json:"failed" yaml:"failed"`
	Entries     []Entry   `json:"entries" yaml:"entries"`
}

// Summary describes a finished run
type Summary struct {
	Total      int
	Converted  int
	Failed     int
	OutputPath string
}

// Run converts every entry of opts.Input and writes the report into
// opts.OutputDir, replacing any previous report atomically.
func Run(ctx context.Context, opts Options) (Summary, error) {
	logger := opts.Logger.WithModule("batch")

	if opts.LockFile != "" {
		fileLock := lock.NewFileLock(opts.LockFile)
		if err := fileLock.TryLock(); err != nil {
			return Summary{}, fmt.Errorf("failed to acquire lock: %w", err)
		}
		defer fileLock.Unlock()
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	r, err := DecodeReader(f, opts.Encoding)
	if err != nil {
		return Summary{}, err
	}

	logger.Info().LogActivity("Converting batch input", map[string]any{"input": opts.Input})
	entries, err := Convert(ctx, r)
	if err != nil {
		return Summary{}, err
	}

	report := Report{
		Source:      opts.Input,
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	}
	for _, e := range entries {
		if e.Error != "" {
			report.Failed++
		} else {
			report.Converted++
		}
	}

	outPath, err := writeReport(opts.OutputDir, opts.Format, report)
	if err != nil {
		return Summary{}, err
	}

	logger.Info().LogActivity("Batch report written", map[string]any{
		"output":    outPath,
		"converted": report.Converted,
		"failed":    report.Failed,
	})

	return Summary{
		Total:      len(entries),
		Converted:  report.Converted,
		Failed:     report.Failed,
		OutputPath: outPath,
	}, nil
}

// DecodeReader wraps r so it yields UTF-8 for the given input encoding.
func DecodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", config.EncodingUTF8:
		return r, nil
	case config.EncodingEUCKR:
		return transform.NewReader(r, korean.EUCKR.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// Convert resolves each line of r. Blank lines and lines starting with
// '#' are skipped.
func Convert(ctx context.Context, r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		// Check for cancellation between lines
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries = append(entries, ConvertLine(lineNo, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return entries, nil
}

// ConvertLine resolves one input. Failures are recorded in Entry.Error.
func ConvertLine(line int, input string) Entry {
	entry := Entry{Line: line, Input: strings.TrimSpace(input)}
	v, err := numeral.Resolve(input)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	formats := numeral.Format(v)
	entry.Value = &v
	entry.Formats = &formats
	return entry
}

// writeReport writes the report to a temp file and renames it into place,
// so readers never observe a partial report.
func writeReport(dir, format string, report Report) (string, error) {
	var (
		data []byte
		err  error
		name string
	)
	switch format {
	case config.FormatYAML:
		name = "results.yaml"
		data, err = yaml.Marshal(report)
	case "", config.FormatJSON:
		name = "results.json"
		data, err = json.MarshalIndent(report, "", "  ")
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	finalPath := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to rename temp to final: %w", err)
	}

	return finalPath, nil
}
