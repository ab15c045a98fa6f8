package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	}
	return "  "
}

type Line struct {
	Op   Op
	Text string
}

// Lines returns the line diff from from to to.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, diff := range diffs {
		if diff.Text == "" {
			continue
		}
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether any line of lines is inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders lines with "+ " and "- " markers, keeping context equal
// lines around each change; skipped runs are shown as "...".
func Format(lines []Line, context int, colors bool) string {
	var (
		ins = color.New(color.FgGreen)
		del = color.New(color.FgRed)
		sep = color.New(color.Faint)
	)
	if colors {
		ins.EnableColor()
		del.EnableColor()
		sep.EnableColor()
	} else {
		ins.DisableColor()
		del.DisableColor()
		sep.DisableColor()
	}
	near := make([]bool, len(lines))
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			near[j] = true
		}
	}
	b := &strings.Builder{}
	skipped := false
	for i, ln := range lines {
		if !near[i] {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString(sep.Sprint("...") + "\n")
			skipped = false
		}
		text := ln.Op.prefix() + ln.Text
		switch ln.Op {
		case Insert:
			text = ins.Sprint(text)
		case Delete:
			text = del.Sprint(text)
		}
		b.WriteString(text + "\n")
	}
	if skipped && b.Len() > 0 {
		b.WriteString(sep.Sprint("...") + "\n")
	}
	return b.String()
}
