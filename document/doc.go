// Package document implements the XJS document tree: tagged values, ordered
// arrays and objects, and the trivia (blank-line counts and attributed
// comments) that lets a parsed document round-trip back to its original
// formatting.
//
// [Value] is the tagged variant described by the XJS data model: null, bool,
// number, string, array, or object. Every value carries a [Trivia], which in
// turn owns zero or more [CommentBuffer] instances keyed by [CommentType].
// Objects additionally keep a small hash-slot side table for amortized O(1)
// key lookup, falling back to a linear last-match scan when the table can't
// represent an index (see [Value.GetMember]).
package document
