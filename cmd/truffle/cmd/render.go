package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	"github.com/msto63/truffle/foundation/truffle/parser"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles groups every style the CLI prints with
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Tree     lipgloss.Style
	OK       lipgloss.Style
	Error    lipgloss.Style
	Code     lipgloss.Style
	Muted    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Subtitle: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Tree: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		OK: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
		Code: lipgloss.NewStyle().
			Foreground(colorAccent),
		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}

// plainStyles renders text unchanged
func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		Title:    plain,
		Subtitle: plain,
		Tree:     plain,
		OK:       plain,
		Error:    plain,
		Code:     plain,
		Muted:    plain,
	}
}

// diagnostic renders a build error as
//
//	error[CODE]: message
//	  --> file:line:column (token N `text`)
func diagnostic(st styles, file string, err error) string {
	var b strings.Builder

	code := mdwerror.GetCode(err)
	b.WriteString(st.Error.Render("error"))
	b.WriteString(st.Code.Render("[" + code.String() + "]"))
	b.WriteString(": ")
	b.WriteString(message(err))

	if line, column, index, ok := parser.Location(err); ok {
		where := fmt.Sprintf("token %d", index)
		if line > 0 {
			where = fmt.Sprintf("%d:%d", line, column)
		}
		if file != "" {
			where = file + ":" + where
		}
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("  --> " + where + tokenSuffix(err, index)))
	}

	return b.String()
}

// message drops the wrap chain prefix the CLI added itself
func message(err error) string {
	if e, ok := mdwerror.AsError(err); ok {
		if e.Code() != mdwerror.CodeUnknown && e.Unwrap() == nil {
			return e.Message()
		}
	}
	return err.Error()
}

func tokenSuffix(err error, index int) string {
	e, ok := mdwerror.AsError(err)
	if !ok {
		return ""
	}
	text, _ := e.Detail(parser.DetailToken)
	if s, _ := text.(string); s != "" && s != "\n" {
		return fmt.Sprintf(" (token %d `%s`)", index, s)
	}
	return ""
}

func printError(w io.Writer, st styles, err error) {
	fmt.Fprintln(w, diagnostic(st, "", err))
}
