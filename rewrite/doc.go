// Package rewrite applies the declaration transform to whole source
// files.
//
// It scans a file's token stream for the //actiongen:action directive,
// parses and re-emits each marked declaration independently, and
// splices the emitted wrapper over the original text, erasing the
// marker with it. When anything was rewritten, the imports the emitted
// code needs ("context" and the future package) are added if absent.
//
// Rewriting is all-or-nothing per file: a marker attached to anything
// other than a function declaration, or a marked declaration that does
// not parse, fails the file with a diagnostic and yields no output.
package rewrite
