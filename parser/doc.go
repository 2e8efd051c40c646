// Package parser builds a [document.Value] tree from a token stream,
// attributing comments and blank-line trivia to the tree nodes they
// belong to. It implements two grammars: the full XJS grammar (open
// roots, implicit strings, trailing commas, comments) in [Parse], and
// strict JSON in [ParseStrict].
package parser
