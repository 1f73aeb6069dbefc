// Package formatter drives the whole-file rewrite: it locates runs of use
// declarations, merges each run through the prefix tree, and splices the
// canonical blocks back between the untouched surrounding text.
package formatter

import (
	"bytes"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/tidyuse/tidyuse/pkg/errors"
	"github.com/tidyuse/tidyuse/pkg/parser"
	"github.com/tidyuse/tidyuse/pkg/rustfmt"
	"github.com/tidyuse/tidyuse/pkg/syntax"
	"github.com/tidyuse/tidyuse/pkg/tree"
	"github.com/tidyuse/tidyuse/pkg/usemap"
	"github.com/tidyuse/tidyuse/pkg/utils"
)

type Config struct {
	FilePath    string   // path to the Rust source file
	InPlace     bool     // whether to modify files in place
	SkipRustfmt bool     // don't pipe results through rustfmt
	RustfmtPath string   // rustfmt binary override
	Edition     string   // edition override; detected from Cargo.toml when empty
	RustfmtArgs []string // extra arguments forwarded to rustfmt
}

// formatter handles the use grouping logic
type formatter struct {
	config Config
}

// New creates a new formatter for the given configuration
func New(config Config) *formatter {
	return &formatter{config: config}
}

// Format rewrites every run of use declarations in src, writing the result
// to out. All text outside the runs is preserved byte for byte.
func Format(src string, out io.Writer) error {
	runs, err := parser.ScanFile(src)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToParseFile)
	}

	last := 0
	for _, run := range runs {
		if _, err := io.WriteString(out, src[last:run.Start]); err != nil {
			return err
		}
		if err := writeRun(run.Items, out); err != nil {
			return err
		}
		last = run.End
	}
	_, err = io.WriteString(out, src[last:])
	return err
}

// writeRun emits one rewritten block: the Standard, External and
// crate-relative categories in order, one statement per import key, each
// non-empty category followed by a blank line.
func writeRun(items []syntax.ItemUse, out io.Writer) error {
	m := usemap.New()
	for _, item := range items {
		if err := m.Add(item); err != nil {
			return err
		}
	}

	for _, category := range usemap.Categories {
		buckets := m.Take(category)
		if len(buckets) == 0 {
			continue
		}
		for _, bucket := range buckets {
			merged := tree.New()
			for _, item := range bucket.Items {
				if err := tree.Walk(item.Tree, merged.Insert); err != nil {
					return err
				}
			}
			statement := syntax.ItemUse{
				Vis:          bucket.Key.Vis,
				LeadingColon: bucket.Key.LeadingColon,
				Tree:         merged.Syntax(),
			}
			if _, err := fmt.Fprintln(out, statement.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) rustfmtOptions(filePath string) rustfmt.Options {
	edition := f.config.Edition
	if edition == "" && filePath != "" {
		edition = utils.CargoEdition(filePath)
	}
	return rustfmt.Options{
		Skip:    f.config.SkipRustfmt,
		Path:    f.config.RustfmtPath,
		Edition: edition,
		Args:    f.config.RustfmtArgs,
	}
}

// format runs the engine and the rustfmt pass, writing the result to dst.
func (f *formatter) format(src string, dst io.Writer) error {
	sink, err := rustfmt.Pipe(f.rustfmtOptions(f.config.FilePath), dst)
	if err != nil {
		return err
	}
	if err := Format(src, sink); err != nil {
		_ = sink.Close()
		return err
	}
	return sink.Close()
}

// ProcessStdin formats a whole file read from standard input to stdout.
func (f *formatter) ProcessStdin() error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToReadStdin)
	}
	return f.format(string(src), os.Stdout)
}

// ProcessFile processes a single Rust source file
func (f *formatter) ProcessFile() error {
	src, err := os.ReadFile(f.config.FilePath)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToReadFile)
	}

	if f.config.InPlace {
		var buf bytes.Buffer
		if err := f.format(string(src), &buf); err != nil {
			return err
		}
		if err := os.WriteFile(f.config.FilePath, buf.Bytes(), 0644); err != nil {
			return pkgerrors.Wrap(err, errors.ErrMsgFailedToWriteFile)
		}
		return nil
	}
	return f.format(string(src), os.Stdout)
}

// ProcessFiles processes multiple Rust source files
func (f *formatter) ProcessFiles(filePaths []string) error {
	processedCount := 0
	errorCount := 0

	for _, filePath := range filePaths {
		f.config.FilePath = filePath
		if err := f.ProcessFile(); err != nil {
			fmt.Printf(errors.InfoMsgErrorProcessing+"\n", filePath, err)
			errorCount++
		} else {
			processedCount++
			if f.config.InPlace {
				fmt.Printf(errors.InfoMsgProcessedFiles+"\n", filePath)
			}
		}
	}

	fmt.Printf(errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		fmt.Printf(errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Println()

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or directory path
func (f *formatter) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToCheckPath)
	}

	if !isDir {
		f.config.FilePath = path
		return f.ProcessFile()
	}

	// When processing directories, in-place mode is recommended
	if !f.config.InPlace {
		fmt.Println(errors.WarnMsgProcessingDirWithoutInPlace)
		fmt.Println(errors.InfoMsgUseInPlaceFlag)
		fmt.Println()
	}

	rustFiles, err := utils.FindRustFiles(path)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToFindRustFiles)
	}

	if len(rustFiles) == 0 {
		fmt.Printf(errors.InfoMsgNoRustFilesFound+"\n", path)
		return nil
	}

	fmt.Printf(errors.InfoMsgFoundRustFiles+"\n", len(rustFiles), path)
	fmt.Println()

	return f.ProcessFiles(rustFiles)
}
