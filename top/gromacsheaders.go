package top

import (
	"regexp"
	"strings"
)

var (
	headerRe  = regexp.MustCompile(`^\[ +([a-zA-Z0-9_]+) +\]`)
	includeRe = regexp.MustCompile(`^#include .+`)
	defineRe  = regexp.MustCompile(`^#define .+`)
)

// section is the part of the topology the reader is currently in.
// Only the sections the package parses get a value.
type section int

const (
	sectionNone section = iota
	sectionSystem
	sectionMolecules
)

func (s section) String() string {
	switch s {
	case sectionSystem:
		return "system"
	case sectionMolecules:
		return "molecules"
	default:
		return "none"
	}
}

// header returns the lower-cased name of the Gromacs header in line, and whether
// line is a header at all. The name needs at least one space on each side
// inside the brackets, like "[ atoms ]".
func header(line string) (string, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// which returns the section that starts with the given header name
// and whether the package parses it.
func which(name string) (section, bool) {
	switch name {
	case "system":
		return sectionSystem, true
	case "molecules":
		return sectionMolecules, true
	}
	return sectionNone, false
}

// splitComment separates the content of a line from its Gromacs comment
// (everything after the first ';'). Both are trimmed. hascomment is true
// if there was a ';' at all, even if the comment is empty.
func splitComment(line string) (content, comment string, hascomment bool) {
	content, comment, hascomment = strings.Cut(line, ";")
	return strings.TrimSpace(content), strings.TrimSpace(comment), hascomment
}

// collapseBlanks removes every empty line that follows another empty line.
// The line before the first one is taken to be the last one, so, when the
// last line is empty, leading empty lines are removed too.
func collapseBlanks(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	ret := make([]string, 0, len(lines))
	for i, l := range lines {
		prev := lines[len(lines)-1]
		if i > 0 {
			prev = lines[i-1]
		}
		if l == "" && prev == "" {
			continue
		}
		ret = append(ret, l)
	}
	return ret
}
