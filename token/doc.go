// Package token implements the tokenizer and the token stream that
// sits between the [reader] package and the parser: it turns a character
// cursor into WORD/NUMBER/SYMBOL/STRING/COMMENT/BREAK tokens, then groups
// those into nested BRACES/BRACKETS/PARENTHESES/OPEN container tokens
// that a parser walks via [Stream] and [Iterator].
package token
