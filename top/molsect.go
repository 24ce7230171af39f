package top

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Molecule is one line of the [ molecules ] section: a molecule name,
// as defined in some moleculetype, and how many copies of it are in the system.
type Molecule struct {
	Name  string
	Count int
}

// MoleculesSection is the ordered content of the [ molecules ] section.
// The order is the order of the molecules in the coordinate file, so
// it is kept. The zero value is an empty section ready to use.
type MoleculesSection struct {
	mols []Molecule
}

// NewMoleculesSection returns an empty molecules section.
func NewMoleculesSection() *MoleculesSection {
	return &MoleculesSection{mols: make([]Molecule, 0, 5)}
}

// Append adds count copies of the molecule name at the end of the section.
// The sign of count is not checked.
func (M *MoleculesSection) Append(name string, count int) {
	M.mols = append(M.mols, Molecule{Name: name, Count: count})
}

// AppendMolecules adds the entries m, in order, at the end of the section.
func (M *MoleculesSection) AppendMolecules(m ...Molecule) {
	M.mols = append(M.mols, m...)
}

// Len returns the number of entries (not of molecules) in the section.
func (M *MoleculesSection) Len() int {
	return len(M.mols)
}

// At returns the ith (0-based) entry. It panics if i is out of range.
func (M *MoleculesSection) At(i int) Molecule {
	return M.mols[i]
}

// Molecules returns a copy of the entries, in order.
func (M *MoleculesSection) Molecules() []Molecule {
	ret := make([]Molecule, len(M.mols))
	copy(ret, M.mols)
	return ret
}

// Each calls f on every entry, in order, until f returns false.
func (M *MoleculesSection) Each(f func(i int, m Molecule) bool) {
	for i, v := range M.mols {
		if !f(i, v) {
			return
		}
	}
}

// Total returns the total number of molecules in the system.
func (M *MoleculesSection) Total() int {
	t := 0
	for _, v := range M.mols {
		t += v.Count
	}
	return t
}

// Count returns how many molecules named name are in the system, adding up
// all the entries with that name.
func (M *MoleculesSection) Count(name string) int {
	t := 0
	for _, v := range M.mols {
		if v.Name == name {
			t += v.Count
		}
	}
	return t
}

// Fractions returns, for each entry, the fraction of the total molecules
// it represents. It returns nil if the total is zero.
func (M *MoleculesSection) Fractions() []float64 {
	if M.Total() == 0 {
		return nil
	}
	ret := make([]float64, len(M.mols))
	for i, v := range M.mols {
		ret[i] = float64(v.Count)
	}
	floats.Scale(1/floats.Sum(ret), ret)
	return ret
}

// String returns the section in Gromacs format, without a trailing newline.
func (M *MoleculesSection) String() string {
	ret := make([]string, 0, len(M.mols)+2)
	ret = append(ret, "[ molecules ]", "; name  number")
	for _, v := range M.mols {
		ret = append(ret, fmt.Sprintf("%-15s %7d", v.Name, v.Count))
	}
	return strings.Join(ret, "\n")
}
