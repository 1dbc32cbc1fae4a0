// Package inject splices content into text templates at literal placeholder
// tokens. It has no file or network access; callers read the template and
// content themselves and write the returned document.
package inject
