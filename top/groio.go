package top

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile reads a Gromacs topology from the file fname.
// .gz and .zst files are decompressed.
func ReadFile(fname string) (*Topology, error) {
	return NewTopology(fname)
}

func (T *Topology) readFile(fname string) (err error) {
	f, err := os.Open(fname)
	if err != nil {
		return fileError(err, fname, "ReadFile")
	}
	defer f.Close()
	r, err := newDecompressor(fname, f)
	if err != nil {
		return fileError(err, fname, "ReadFile")
	}
	defer r.Close()
	if err = T.Read(r); err != nil {
		return fileError(err, fname, "ReadFile")
	}
	return nil
}

// Read reads a Gromacs topology from r into the receiver. Reading is additive,
// lines and molecules already in T are kept. If an error is returned, T keeps
// whatever was read up to the offending line.
func (T *Topology) Read(r io.Reader) error {
	br := bufio.NewReader(r)
	current := sectionNone
	for n := 1; ; n++ {
		s, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("Read: line %d: %w", n, err)
		}
		if s == "" && err != nil {
			return nil
		}
		content, comment, hascomment := splitComment(s)
		if name, ok := header(content); ok {
			if sec, parsed := which(name); parsed {
				current = sec
				if err != nil {
					return nil
				}
				continue
			}
			//Other headers don't end the current section. That only matters
			//if [ system ] or [ molecules ] are not the last sections.
			if current != sectionNone {
				T.logger().Warn("gromacs header inside a parsed section, handled as part of that section",
					"header", name, "section", current.String(), "line", n)
			}
		}
		var rerr error
		switch current {
		case sectionSystem:
			rerr = T.readSystem(content, n)
		case sectionMolecules:
			rerr = T.readMolecules(content, n)
		default:
			T.readDefault(content, comment, hascomment)
		}
		if rerr != nil {
			return rerr
		}
		if err != nil {
			return nil
		}
	}
}

func (T *Topology) readSystem(line string, n int) error {
	if strings.HasPrefix(line, "#") {
		return newError(ErrUnsupportedDirective, n, `%q after "[ system ]"`, line)
	}
	if line == "" {
		return nil
	}
	if T.Name != "" && T.Name != line {
		return newError(ErrAmbiguousName, n, "%q and %q", T.Name, line)
	}
	T.Name = line
	return nil
}

func (T *Topology) readMolecules(line string, n int) error {
	if strings.HasPrefix(line, "#") {
		return newError(ErrUnsupportedDirective, n, `%q after "[ molecules ]"`, line)
	}
	if line == "" {
		return nil
	}
	f := strings.Fields(line)
	if len(f) != 2 {
		return newError(ErrMalformedMolecule, n, "expected name and number, got %q", line)
	}
	count, err := strconv.Atoi(f[1])
	if err != nil {
		return newError(ErrMalformedMolecule, n, "number of molecules %q is not an integer", f[1])
	}
	T.mols().Append(f[0], count)
	return nil
}

func (T *Topology) readDefault(line, comment string, hascomment bool) {
	if hascomment {
		line = line + " ; " + comment
	}
	T.Unparsed = append(T.Unparsed, line)
}

// Write writes the topology, in Gromacs format, to w.
func (T *Topology) Write(w io.Writer) error {
	s, err := T.ToGro()
	if err != nil {
		return err
	}
	return writeString(w, s)
}

// WriteFile writes the topology to the file fname, which is created or truncated.
// .gz and .zst files are compressed.
func (T *Topology) WriteFile(fname string) (err error) {
	s, err := T.ToGro()
	if err != nil {
		return fileError(err, fname, "WriteFile")
	}
	f, err := os.Create(fname)
	if err != nil {
		return fileError(err, fname, "WriteFile")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError(cerr, fname, "WriteFile")
		}
	}()
	if err = writeCompressed(fname, f, s); err != nil {
		return fileError(err, fname, "WriteFile")
	}
	return nil
}

// writeCompressed writes s to f through the compressor for fname.
// A failed write still closes the compressor, and its error, if any,
// is returned together with the write error.
func writeCompressed(fname string, f io.Writer, s string) error {
	w, err := newCompressor(fname, f)
	if err != nil {
		return err
	}
	if err = writeString(w, s); err != nil {
		return errors.Join(err, w.Close())
	}
	//the compressors only flush everything on Close.
	return w.Close()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}
