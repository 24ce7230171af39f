package top

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteFileCompressed(Te *testing.T) {
	T, err := ReadFile(filepath.Join(testdir, "peptide.top"))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"out.top", "out.top.gz", "out.top.zst", "OUT.TOP.GZ"} {
		fname := filepath.Join(dir, name)
		if err := T.WriteFile(fname); err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		T2, err := ReadFile(fname)
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if diff := cmp.Diff(T.String(), T2.String()); diff != "" {
			Te.Errorf("%s: round trip mismatch (-want +got):\n%s", name, diff)
		}
	}
	plain, err := os.ReadFile(filepath.Join(dir, "out.top"))
	if err != nil {
		Te.Fatal(err)
	}
	if string(plain) != T.String() {
		Te.Error("plain file differs from ToGro output")
	}
	zipped, err := os.ReadFile(filepath.Join(dir, "out.top.zst"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(zipped) < 4 || !bytes.Equal(zipped[:4], []byte{0x28, 0xb5, 0x2f, 0xfd}) {
		Te.Error(".zst file is not a zstd frame")
	}
}

func TestReadFileErrors(Te *testing.T) {
	_, err := ReadFile(filepath.Join(testdir, "nothere.top"))
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
	fname := filepath.Join(testdir, "badcount.top")
	_, err = NewTopology(fname)
	if !errors.Is(err, ErrMalformedMolecule) {
		Te.Fatalf("expected malformed entry error, got %v", err)
	}
	var terr *Error
	if !errors.As(err, &terr) {
		Te.Fatalf("expected a *Error, got %T", err)
	}
	if terr.FileName() != fname || terr.Line() != 8 {
		Te.Errorf("wrong error location: %s line %d", terr.FileName(), terr.Line())
	}
	if !strings.Contains(err.Error(), "badcount.top line 8") {
		Te.Errorf("location missing from message: %s", err)
	}
	if diff := cmp.Diff([]string{"ReadFile"}, terr.Decorate("")); diff != "" {
		Te.Errorf("decoration mismatch (-want +got):\n%s", diff)
	}
	//not gzip data
	bad := filepath.Join(Te.TempDir(), "plain.top.gz")
	if err := os.WriteFile(bad, []byte("[ system ]\nfoo\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadFile(bad); err == nil {
		Te.Error("expected an error reading a non-gzip .gz file")
	}
}

func TestNoFinalNewline(Te *testing.T) {
	T := mustRead(Te, "[ system ]\nWater\n[ molecules ]\nSOL 5")
	if T.Molecules.Count("SOL") != 5 {
		Te.Errorf("last line without newline not read: %v", T.Molecules.Molecules())
	}
	T = mustRead(Te, "#include \"a.itp\"")
	if diff := cmp.Diff([]string{`#include "a.itp"`}, T.Unparsed); diff != "" {
		Te.Errorf("unparsed mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapseBlanks(Te *testing.T) {
	cases := []struct {
		in, want []string
	}{
		{[]string{}, []string{}},
		{[]string{"a", "", "", "b", ""}, []string{"a", "", "b", ""}},
		{[]string{"", "", "a", "", ""}, []string{"a", ""}},
		{[]string{"", "a"}, []string{"", "a"}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, collapseBlanks(c.in)); diff != "" {
			Te.Errorf("collapseBlanks(%q) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

var errDiskFull = errors.New("disk full")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteCompressedFailure(Te *testing.T) {
	for _, name := range []string{"out.top", "out.top.gz"} {
		err := writeCompressed(name, failWriter{}, "[ system ]\nfoo\n")
		if !errors.Is(err, errDiskFull) {
			Te.Errorf("%s: expected the write error to be returned, got %v", name, err)
		}
	}
}
