package book

import "strings"

// SymbolDir is the directory the character symbol files are referenced under.
const SymbolDir = "symbols"

var symbolReplacer = strings.NewReplacer(" ", "_", "-", "_")

// SymbolPath returns the symbol file reference for a character name,
// e.g. "Lady Kaguya" becomes "symbols/lady_kaguya.svg". The file is never opened.
func SymbolPath(character string) string {
	return SymbolDir + "/" + symbolReplacer.Replace(strings.ToLower(character)) + ".svg"
}
