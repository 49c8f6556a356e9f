// Package bundle implements localized strings-table loading: a
// mutex-guarded registry of mapped strings files, each held in memory as
// a key -> compacted-value table compressed via internal/strtab.
package bundle

import (
	"bufio"
	"os"
	"strings"

	"github.com/axiomhq/corestr/curl"
	"github.com/axiomhq/corestr/internal/cflock"
	"github.com/axiomhq/corestr/internal/corelog"
	"github.com/axiomhq/corestr/internal/strtab"
)

// Table is one loaded strings file: keys paired with symbol-table-coded
// values, decoded on demand.
type Table struct {
	keys   map[string]int // key -> index into codes/symbols
	codes  [][]byte
	table  *strtab.SymbolTable
	source string
}

// Load reads a ".strings"-style (key = "value";) file at path, trains a
// symbol table over its values, and returns a Table backed by the
// compacted representation. On any failure it logs an info-level
// fallback line and returns the error.
func Load(path string) (*Table, error) {
	c := curl.Parse(path)
	if !c.IsFileURL() {
		err := wrapUnsupportedScheme(c.Scheme)
		corelog.LocalizedLoadFallback(path, err)
		return nil, err
	}
	resolved := c.Path
	if resolved == "" {
		resolved = path
	}

	f, err := os.Open(resolved)
	if err != nil {
		corelog.LocalizedLoadFallback(path, err)
		return nil, err
	}
	defer f.Close()

	keys, values, err := parseStringsFile(f)
	if err != nil {
		corelog.LocalizedLoadFallback(path, err)
		return nil, err
	}

	tbl := strtab.TrainStrings(values)
	codes := make([][]byte, len(values))
	index := make(map[string]int, len(keys))
	for i, v := range values {
		codes[i] = tbl.EncodeAll([]byte(v))
		index[keys[i]] = i
	}

	return &Table{keys: index, codes: codes, table: tbl, source: resolved}, nil
}

// Lookup returns the decompressed value for key, or (\"\", false) if key
// is absent.
func (t *Table) Lookup(key string) (string, bool) {
	i, ok := t.keys[key]
	if !ok {
		return "", false
	}
	return string(t.table.DecodeAll(t.codes[i])), true
}

// Len reports the number of keys in the table.
func (t *Table) Len() int { return len(t.keys) }

func parseStringsFile(f *os.File) (keys, values []string, err error) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := unquote(strings.TrimSpace(line[:eq]))
		val := strings.TrimSpace(line[eq+1:])
		val = strings.TrimSuffix(val, ";")
		val = unquote(strings.TrimSpace(val))
		keys = append(keys, key)
		values = append(values, val)
	}
	return keys, values, scanner.Err()
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func wrapUnsupportedScheme(scheme string) error {
	return &unsupportedSchemeError{scheme: scheme}
}

type unsupportedSchemeError struct{ scheme string }

func (e *unsupportedSchemeError) Error() string {
	return "bundle: unsupported URL scheme " + e.scheme
}

// Registry is a process-wide, append-only collection of loaded Tables,
// guarded by a single lock so concurrent loaders never race on the
// backing slice.
type Registry struct {
	lock   cflock.Lock
	tables []*Table
}

// Global is the process-wide registry new bundles register with.
var Global = &Registry{}

// Register adds t to the registry and returns its index.
func (r *Registry) Register(t *Table) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.tables = append(r.tables, t)
	return len(r.tables) - 1
}

// At returns the table at idx, or nil if idx is out of range.
func (r *Registry) At(idx int) *Table {
	r.lock.Lock()
	defer r.lock.Unlock()
	if idx < 0 || idx >= len(r.tables) {
		return nil
	}
	return r.tables[idx]
}

// Count reports how many tables are registered.
func (r *Registry) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.tables)
}
