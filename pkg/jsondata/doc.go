// Package jsondata decodes JSON data files and re-serializes them for inline
// embedding in HTML.
//
// Decoding keeps object keys in source order and number literals as written.
// Marshal emits a stable, human-readable layout: one item per line, ": "
// between keys and values, ASCII-only strings with lowercase \uXXXX escapes,
// and floats in shortest repr form (1e-05, 1e+16, 2.0). ScriptBlock wraps the
// result in an inert <script type="application/json"> element.
package jsondata
