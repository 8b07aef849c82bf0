package termpick

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"termpick/internal/logging"
	"termpick/internal/logging/events"
	"termpick/render"
)

// FileConfig configures a file chooser. Config.Choices is ignored; the
// list is read from the filesystem.
type FileConfig struct {
	Config

	// InitialPath is the directory to open. A file path opens its
	// parent with the file highlighted; a missing or empty path opens
	// the working directory.
	InitialPath string

	// ChooseDirs browses directories only and adds a SELECT entry that
	// confirms the directory being viewed.
	ChooseDirs bool

	// SortTogether interleaves directories and files in one sorted
	// list instead of listing directories first. FilesFirst keeps the
	// two groups but puts files above directories.
	SortTogether bool
	FilesFirst   bool

	ExcludeHidden bool
	ExcludeDunder bool

	// Globs keeps only files matching at least one pattern.
	// Directories always stay, for navigation.
	Globs []string

	// DisableAutoFilter stops the chooser from turning filtering on
	// when a directory overflows the visible rows.
	DisableAutoFilter bool
}

type entryKind int

const (
	entryFile entryKind = iota
	entryDir
	entrySelect
	entrySelf
	entryParent
)

type fileEntry struct {
	name string
	kind entryKind
}

// FileChooser browses the filesystem: confirming a directory descends
// into it, confirming a file (or the SELECT entry) finishes the run.
type FileChooser struct {
	*Chooser

	current  string
	resolved string
	entries  []fileEntry

	chooseDirs        bool
	sortTogether      bool
	filesFirst        bool
	excludeHidden     bool
	excludeDunder     bool
	globs             []string
	disableAutoFilter bool
	userFiltering     bool

	// highlightName is consumed by the first listing to put the cursor
	// on the file the initial path named.
	highlightName string
}

// NewFile builds a file chooser rooted at the configured path.
func NewFile(cfg FileConfig) *FileChooser {
	f := &FileChooser{
		chooseDirs:        cfg.ChooseDirs,
		sortTogether:      cfg.SortTogether,
		filesFirst:        cfg.FilesFirst,
		excludeHidden:     cfg.ExcludeHidden,
		excludeDunder:     cfg.ExcludeDunder,
		globs:             cfg.Globs,
		disableAutoFilter: cfg.DisableAutoFilter,
		userFiltering:     cfg.EnableFiltering,
	}
	f.current, f.highlightName = resolveStart(cfg.InitialPath)

	cfg.Choices = nil
	if cfg.OnConfirm == nil {
		cfg.OnConfirm = f.handleConfirm
	}
	f.Chooser = newChooser(cfg.Config, fileExtension{f})
	return f
}

// resolveStart normalizes the initial path to an existing directory,
// plus the file name to highlight when the path named a file.
func resolveStart(path string) (dir, highlight string) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs, _ = os.Getwd()
		return abs, ""
	}
	info, err := os.Stat(abs)
	if err != nil {
		wd, _ := os.Getwd()
		return wd, ""
	}
	if !info.IsDir() {
		return filepath.Dir(abs), filepath.Base(abs)
	}
	return abs, ""
}

// Run drives the control and returns the chosen absolute path, or ""
// on cancellation.
func (f *FileChooser) Run() string {
	if !f.runLoop() {
		return ""
	}
	return f.resolved
}

// Path returns the directory currently being browsed.
func (f *FileChooser) Path() string { return f.current }

// handleConfirm interprets a confirmation against the entry kind:
// navigation entries descend and keep the run going, file and SELECT
// entries finish it.
func (f *FileChooser) handleConfirm(c *Chooser) bool {
	ch := c.highlighted
	if ch == nil {
		return false
	}
	entry := f.entries[ch.Index]
	switch entry.kind {
	case entrySelect:
		f.resolved = f.current
		return true
	case entrySelf:
		// Re-list the current directory.
		c.filterText = ""
		return false
	case entryParent:
		f.navigate(filepath.Dir(f.current))
		return false
	case entryDir:
		f.navigate(filepath.Join(f.current, entry.name))
		return false
	default:
		f.resolved = filepath.Join(f.current, entry.name)
		return true
	}
}

func (f *FileChooser) navigate(dir string) {
	f.current = dir
	f.Chooser.filterText = ""
	events.File.Navigate(dir)
}

type fileExtension struct {
	f *FileChooser
}

// PrepareChoices lists the current directory into the choice list:
// synthetic navigation entries first (pinned past the filter), then
// directories and files.
func (e fileExtension) PrepareChoices(c *Chooser) {
	f := e.f
	listed := f.listDir()

	annotate := c.styles.FullPath
	var values []string
	f.entries = f.entries[:0]

	if f.chooseDirs {
		values = append(values, "SELECT "+f.current+string(os.PathSeparator))
		f.entries = append(f.entries, fileEntry{kind: entrySelect})
	} else {
		values = append(values, "./  "+annotate.Render("("+f.current+")"))
		f.entries = append(f.entries, fileEntry{kind: entrySelf})
	}
	if parent := filepath.Dir(f.current); parent != f.current {
		values = append(values, "../  "+annotate.Render("("+parent+")"))
		f.entries = append(f.entries, fileEntry{kind: entryParent})
	}
	pinned := len(values)

	for _, entry := range listed {
		if entry.kind == entryDir {
			values = append(values, entry.name+string(os.PathSeparator))
		} else {
			values = append(values, entry.name)
		}
		f.entries = append(f.entries, entry)
	}

	c.Reset(values, pinned)

	if f.highlightName != "" {
		for pos, entry := range f.entries {
			if entry.name == f.highlightName {
				c.SetDisplayIndex(pos)
				break
			}
		}
		f.highlightName = ""
	} else if !f.chooseDirs && len(values) > pinned {
		// Start on the first real entry, past the navigation rows.
		c.SetDisplayIndex(pinned)
	}

	// Big directories get a filter automatically.
	if !f.userFiltering && !f.disableAutoFilter {
		c.filtering = len(values) > c.visibleCount(len(values), 0)
	}
}

// listDir reads, filters, and sorts the current directory:
// directories first, then files, unless SortTogether interleaves them.
func (f *FileChooser) listDir() []fileEntry {
	rd, err := os.ReadDir(f.current)
	if err != nil {
		logging.Error(err)
		return nil
	}
	var dirs, files []fileEntry
	for _, de := range rd {
		name := de.Name()
		if f.excludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if f.excludeDunder && strings.HasPrefix(name, "__") {
			continue
		}
		if de.IsDir() {
			dirs = append(dirs, fileEntry{name: name, kind: entryDir})
			continue
		}
		if f.chooseDirs {
			continue
		}
		if f.matchGlobs(name) {
			files = append(files, fileEntry{name: name, kind: entryFile})
		}
	}

	byFold := func(s []fileEntry) {
		sort.Slice(s, func(i, j int) bool {
			return strings.ToLower(s[i].name) < strings.ToLower(s[j].name)
		})
	}
	if f.sortTogether {
		all := append(dirs, files...)
		byFold(all)
		return all
	}
	byFold(dirs)
	byFold(files)
	if f.filesFirst {
		return append(files, dirs...)
	}
	return append(dirs, files...)
}

func (f *FileChooser) matchGlobs(name string) bool {
	if len(f.globs) == 0 {
		return true
	}
	for _, g := range f.globs {
		if ok, err := filepath.Match(g, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (fileExtension) DisplayChoices(c *Chooser) []*Choice { return c.filtered }

func (fileExtension) RenderRow(c *Chooser, ch *Choice) render.Line {
	return caretRow(c, ch, ch.Value)
}

func (fileExtension) ValidateSelection(c *Chooser) string { return "" }

func (fileExtension) HandleOtherKey(c *Chooser, tok string) KeyAction {
	return editFilter(c, tok)
}
