package domain

import (
	"regexp"
	"strings"
)

var (
	typedScriptPattern = regexp.MustCompile(`(?i)\.tsx?$`)
	anyScriptPattern   = regexp.MustCompile(`(?i)\.tsx?$|\.jsx?$`)
	declarationPattern = regexp.MustCompile(`(?i)\.d\.tsx?$`)
)

// ScriptPattern returns the pattern of files eligible for compilation.
// JavaScript files are eligible only when allowJs is set and the caller has not excluded them.
func ScriptPattern(allowJS, entryFileCannotBeJS bool) *regexp.Regexp {
	if allowJS && !entryFileCannotBeJS {
		return anyScriptPattern
	}
	return typedScriptPattern
}

// IsDeclarationFile reports whether path is a .d.ts or .d.tsx file.
func IsDeclarationFile(path string) bool {
	return declarationPattern.MatchString(path)
}

// IsJavaScriptFile reports whether path has a JavaScript extension.
func IsJavaScriptFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".js") || strings.HasSuffix(lower, ".jsx")
}
