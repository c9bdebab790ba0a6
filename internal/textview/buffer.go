// Package textview is a read-only text buffer with cursor and scroll state, used
// by the overlay's script viewer.
package textview

import (
	"fmt"
	"path/filepath"
	"strings"

	"spritebox/internal/graphics"
	"spritebox/internal/sys"
)

// Language names a syntax family detected from the file extension.
type Language string

const (
	LangText Language = "Text"
	LangLua  Language = "Lua"
	LangGLSL Language = "GLSL"
	LangGo   Language = "Go"
)

func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return LangLua
	case ".glsl", ".vert", ".frag":
		return LangGLSL
	case ".go":
		return LangGo
	}
	return LangText
}

// Position is a zero-based line and column.
type Position struct {
	Line   int
	Column int
}

type Buffer struct {
	path      string
	lang      Language
	lines     []string
	cursor    Position
	scroll    int
	overwrite bool
	changed   bool
	// eol records a final newline, which does not start another line.
	eol bool
}

func New() *Buffer {
	return &Buffer{lines: []string{""}, lang: LangText}
}

// Load replaces the contents with the file at path.
func (b *Buffer) Load(path string) error {
	data, err := sys.ReadFile(path)
	if err != nil {
		return err
	}
	b.path = path
	b.lang = DetectLanguage(path)
	b.SetText(string(data))
	b.changed = false
	return nil
}

// Reload re-reads the current file, keeping the cursor where possible.
func (b *Buffer) Reload() error {
	if b.path == "" {
		return nil
	}
	data, err := sys.ReadFile(b.path)
	if err != nil {
		return err
	}
	text := string(data)
	b.changed = strings.ReplaceAll(text, "\r\n", "\n") != b.Text()
	cur, scroll := b.cursor, b.scroll
	b.SetText(text)
	b.MoveTo(cur)
	b.scroll = graphics.Clamp(scroll, 0, len(b.lines)-1)
	return nil
}

// SetText replaces the contents and rewinds the cursor.
func (b *Buffer) SetText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text, b.eol = strings.CutSuffix(text, "\n")
	b.lines = strings.Split(text, "\n")
	b.cursor = Position{}
	b.scroll = 0
}

func (b *Buffer) Text() string {
	text := strings.Join(b.lines, "\n")
	if b.eol {
		text += "\n"
	}
	return text
}

func (b *Buffer) Lines() []string    { return b.lines }
func (b *Buffer) TotalLines() int    { return len(b.lines) }
func (b *Buffer) Path() string       { return b.path }
func (b *Buffer) Language() Language { return b.lang }
func (b *Buffer) Cursor() Position   { return b.cursor }

// Changed reports whether the last Reload brought in different contents.
func (b *Buffer) Changed() bool { return b.changed }

func (b *Buffer) IsOverwrite() bool { return b.overwrite }

func (b *Buffer) ToggleOverwrite() { b.overwrite = !b.overwrite }

// MoveTo places the cursor, clamped to the text.
func (b *Buffer) MoveTo(p Position) {
	p.Line = graphics.Clamp(p.Line, 0, len(b.lines)-1)
	p.Column = graphics.Clamp(p.Column, 0, len([]rune(b.lines[p.Line])))
	b.cursor = p
}

func (b *Buffer) MoveLines(delta int) {
	b.MoveTo(Position{Line: b.cursor.Line + delta, Column: b.cursor.Column})
}

// Scroll moves the first visible line by delta.
func (b *Buffer) Scroll(delta int) {
	b.scroll = graphics.Clamp(b.scroll+delta, 0, len(b.lines)-1)
}

// Visible returns up to n lines starting at the scroll offset, and that offset.
func (b *Buffer) Visible(n int) ([]string, int) {
	if n <= 0 {
		return nil, b.scroll
	}
	end := min(b.scroll+n, len(b.lines))
	return b.lines[b.scroll:end], b.scroll
}

// StatusLine formats position, size, mode and file like a classic editor header.
func (b *Buffer) StatusLine() string {
	mode := "Ins"
	if b.overwrite {
		mode = "Ovr"
	}
	mark := " "
	if b.changed {
		mark = "*"
	}
	return fmt.Sprintf("%6d/%-6d %6d lines  %s %s | %s | %s",
		b.cursor.Line+1, b.cursor.Column+1, len(b.lines), mode, mark, b.lang, b.path)
}
