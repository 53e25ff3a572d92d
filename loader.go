package ithkuil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	affixColumns = 11
	rootColumns  = 5
)

// ReadAffixes parses a tab-separated affix table. The first line is a
// header; rows with fewer than eleven columns (consonant form,
// abbreviation, nine degree descriptions) are skipped.
func ReadAffixes(ctx context.Context, r io.Reader) ([]AffixEntry, error) {
	var out []AffixEntry
	err := scanRows(ctx, r, affixColumns, func(cols []string) {
		a := AffixEntry{Cs: DefaultForm(cols[0]), Abbreviation: cols[1]}
		copy(a.Degrees[:], cols[2:affixColumns])
		out = append(out, a)
	})
	return out, err
}

// ReadRoots parses a tab-separated root table. The first line is a header;
// rows with fewer than five columns (consonant form, four stem
// descriptions) are skipped.
func ReadRoots(ctx context.Context, r io.Reader) ([]RootEntry, error) {
	var out []RootEntry
	err := scanRows(ctx, r, rootColumns, func(cols []string) {
		root := RootEntry{Cr: DefaultForm(cols[0])}
		copy(root.Stems[:], cols[1:rootColumns])
		out = append(out, root)
	})
	return out, err
}

// scanRows calls fn for every data row carrying at least min columns.
func scanRows(ctx context.Context, r io.Reader, min int, fn func([]string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < min {
			continue
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if cols[0] == "" {
			continue
		}
		fn(cols)
	}
	return sc.Err()
}

// LoadDictionary reads the affix and root tables concurrently and builds a
// snapshot. An empty path leaves that half of the dictionary empty.
func LoadDictionary(ctx context.Context, affixPath, rootPath string) (*Dictionary, error) {
	var (
		affixes []AffixEntry
		roots   []RootEntry
	)
	g, ctx := errgroup.WithContext(ctx)
	if affixPath != "" {
		g.Go(func() error {
			return readFile(affixPath, func(f io.Reader) (err error) {
				affixes, err = ReadAffixes(ctx, f)
				return err
			})
		})
	}
	if rootPath != "" {
		g.Go(func() error {
			return readFile(rootPath, func(f io.Reader) (err error) {
				roots, err = ReadRoots(ctx, f)
				return err
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewDictionary(affixes, roots), nil
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
