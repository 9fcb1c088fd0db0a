// Package highlight provides syntax highlighting for code blocks
// in rendered HTML documents.
// It uses the Chroma library to do this work.
//
// Languages are held in an [Engine],
// which tracks the built-in keywords for each language.
// Keywords may be added at runtime with [Engine.AddKeywords];
// a [Highlighter] marks these keywords as built-ins
// when it highlights code in that language.
package highlight
