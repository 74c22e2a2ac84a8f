package entry

import (
	"runtime"
	"strings"
)

// lineBreaks are the spellings of a line break accepted in entry text:
// real CR/LF characters, their backslash escapes as typed on a command
// line, and HTML breaks. Longer spellings come first so "\r\n" is one break.
var lineBreaks = []string{
	"\r\n", `\r\n`,
	"\r", `\r`,
	"\n", `\n`,
	"<br>", "<br/>", "<br />",
}

// textEscaper escapes the characters significant to the plist markup,
// using the numeric entity for the apostrophe.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// platformLineEnding returns the line ending of the running OS.
func platformLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// normalizeLineBreaks replaces every line break spelling with eol.
func normalizeLineBreaks(text, eol string) string {
	pairs := make([]string, 0, 2*len(lineBreaks))
	for _, lb := range lineBreaks {
		pairs = append(pairs, lb, eol)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func escapeText(text string) string {
	return textEscaper.Replace(text)
}
