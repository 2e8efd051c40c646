// Package writer emits a [document.Value] tree back to text, either as XJS
// (preserving trivia, condensing runs, and preferring unquoted implicit
// forms) or as strict JSON (canonical, comment-free).
package writer
