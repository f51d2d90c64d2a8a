package gen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/griffnb/imagename-gen/internal/console"
	"github.com/griffnb/imagename-gen/internal/naming"
	"github.com/griffnb/imagename-gen/internal/scanner"
)

var (
	open   = os.Open
	create = os.Create
)

const (
	// DefaultOverridesFile is the location the generator will look for name overrides.
	DefaultOverridesFile = ".imagenames"
	// DefaultEnumName names the generated enumeration.
	DefaultEnumName = "ImageName"
	// DefaultImportModule provides UIImage and UIImageView to the generated code.
	DefaultImportModule = "UIKit"
)

// Gen presents a generate tool for image name enumerations.
type Gen struct {
	debug Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	return &Gen{
		debug: log.New(os.Stdout, "", log.LstdFlags),
	}
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// SourceDir is the asset catalog directory holding the bundles
	SourceDir string

	// DestFile is the generated Swift file, overwritten on every run
	DestFile string

	// Suffix marks an entry of SourceDir as an image bundle
	Suffix string

	// EnumName names the generated enumeration
	EnumName string

	// ImportModule is imported at the top of the generated file. The
	// setImage extension needs UIImage and UIImageView from it, so it must be
	// UIKit or a module that re-exports UIKit.
	ImportModule string

	// Depth is the nesting level of the enumeration, one tab per level
	Depth uint

	// OverridesFile defines per-bundle skips and member name replacements.
	OverridesFile string
}

// DestinationOpenError is returned when the destination file cannot be
// created or opened for writing.
type DestinationOpenError struct {
	Path string
	Err  error
}

func (e *DestinationOpenError) Error() string {
	return fmt.Sprintf("couldn't open file %s for writing: %v", e.Path, e.Err)
}

func (e *DestinationOpenError) Unwrap() error {
	return e.Err
}

// Build scans config.SourceDir and writes the image name enumeration to
// config.DestFile. An unreadable source directory is reported and produces an
// empty enumeration.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}
	if config.Suffix == "" {
		config.Suffix = scanner.DefaultSuffix
	}
	if config.EnumName == "" {
		config.EnumName = DefaultEnumName
	}
	if config.ImportModule == "" {
		config.ImportModule = DefaultImportModule
	}

	overrides, err := loadOverrides(config.OverridesFile)
	if err != nil {
		return err
	}

	names, err := scanner.Scan(config.SourceDir, config.Suffix)
	if err != nil {
		console.Logger.Warn("$Bold{$Yellow{warning:}} %s", err)
	}
	console.Logger.Debug("Found %d image bundles in %s", len(names), config.SourceDir)

	enum := Enum{
		Name:         config.EnumName,
		ImportModule: config.ImportModule,
		Depth:        config.Depth,
		Cases:        buildCases(names, overrides),
	}

	g.debug.Printf("Loading image names into %s", config.DestFile)

	buffer := &bytes.Buffer{}
	if err := Render(buffer, enum); err != nil {
		return err
	}

	if err := g.writeFile(buffer.Bytes(), config.DestFile); err != nil {
		return err
	}

	console.Logger.Debug("create %s with %d cases", config.DestFile, len(enum.Cases))

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := create(file)
	if err != nil {
		return &DestinationOpenError{Path: file, Err: err}
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}

// buildCases pairs every raw name with its member identifier. Duplicates are
// kept as they are.
func buildCases(names []string, overrides map[string]override) []Case {
	cases := make([]Case, 0, len(names))
	for _, name := range names {
		o, ok := overrides[name]
		switch {
		case ok && o.skip:
			console.Logger.Debug("Skipping %s", name)
		case ok:
			cases = append(cases, Case{Member: o.member, Raw: name})
		default:
			cases = append(cases, Case{Member: naming.MemberName(name), Raw: name})
		}
	}

	return cases
}

// override is one directive of the overrides file: either drop the bundle or
// emit it under member instead of the formatted name.
type override struct {
	skip   bool
	member string
}

// loadOverrides reads path. No path, or a missing DefaultOverridesFile, means
// no overrides.
func loadOverrides(path string) (map[string]override, error) {
	if path == "" {
		return nil, nil
	}

	f, err := open(path)
	if errors.Is(err, fs.ErrNotExist) && path == DefaultOverridesFile {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open overrides file: %w", err)
	}
	defer f.Close()

	console.Logger.Debug("Using overrides from %s", path)

	return parseOverrides(f)
}

// parseOverrides reads "skip <name>" and "replace <name> <identifier>" lines.
// Blank lines and lines starting with "//" are ignored.
func parseOverrides(r io.Reader) (map[string]override, error) {
	overrides := make(map[string]override)
	lines := bufio.NewScanner(r)

	for lines.Scan() {
		line := lines.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "//") {
			continue
		}

		switch directive := fields[0]; {
		case directive == "skip" && len(fields) == 2:
			overrides[fields[1]] = override{skip: true}
		case directive == "replace" && len(fields) == 3:
			overrides[fields[1]] = override{member: fields[2]}
		default:
			return nil, fmt.Errorf("could not parse override: '%s'", line)
		}
	}

	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("error reading overrides file: %w", err)
	}

	return overrides, nil
}
