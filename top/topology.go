package top

import (
	"log/slog"
	"strings"

	"github.com/rmera/grotop/listview"
)

// Topology is a Gromacs system topology. Name and Molecules hold the
// [ system ] and [ molecules ] sections. Unparsed holds every other line
// of the file, in order, with its comment, if any, re-attached.
type Topology struct {
	Unparsed  []string
	Name      string
	Molecules *MoleculesSection
	log       *slog.Logger
}

// NewTopology returns a new, empty topology. If a filename is given,
// the topology is read from that file.
func NewTopology(fname ...string) (*Topology, error) {
	T := &Topology{Unparsed: make([]string, 0, 20), Molecules: NewMoleculesSection()}
	if len(fname) > 0 && fname[0] != "" {
		err := T.readFile(fname[0])
		if err != nil {
			return nil, err
		}
	}
	return T, nil
}

// SetLogger sets the logger used to warn about suspicious input. If it's
// never called, slog.Default() is used.
func (T *Topology) SetLogger(l *slog.Logger) {
	T.log = l
}

func (T *Topology) logger() *slog.Logger {
	if T.log == nil {
		return slog.Default()
	}
	return T.log
}

func (T *Topology) mols() *MoleculesSection {
	if T.Molecules == nil {
		T.Molecules = NewMoleculesSection()
	}
	return T.Molecules
}

// Includes returns a live view of the #include lines in the topology.
// Lines appended to the view go to the end of T.Unparsed.
func (T *Topology) Includes() *listview.View[string] {
	return listview.NewRegexp(&T.Unparsed, includeRe)
}

// Defines returns a live view of the #define lines in the topology.
func (T *Topology) Defines() *listview.View[string] {
	return listview.NewRegexp(&T.Unparsed, defineRe)
}

// Include adds an #include statement for the file fname.
func (T *Topology) Include(fname string) {
	T.Includes().Append(`#include "` + fname + `"`)
}

// Define adds a #define statement for macro, which can
// include a value ("POSRES_FC 1000").
func (T *Topology) Define(macro string) {
	T.Defines().Append("#define " + macro)
}

// ToGro returns the topology in Gromacs format. The unparsed lines come first,
// then the [ system ] and [ molecules ] sections. There are never two consecutive
// empty lines in the output. It returns an error if the topology has no name.
func (T *Topology) ToGro() (string, error) {
	if T.Name == "" {
		err := newError(ErrMissingName, 0, "")
		err.Decorate("ToGro")
		return "", err
	}
	out := make([]string, 0, len(T.Unparsed)+7)
	out = append(out, T.Unparsed...)
	out = append(out,
		"",
		"[ system ]",
		"; name",
		T.Name,
		"",
		T.mols().String(),
		"",
	)
	return strings.Join(collapseBlanks(out), "\n"), nil
}

// String implements fmt.Stringer. It returns an empty string
// if the topology can't be written (see ToGro).
func (T *Topology) String() string {
	s, err := T.ToGro()
	if err != nil {
		return ""
	}
	return s
}
