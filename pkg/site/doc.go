// Package site runs the static-site build step: it reads a template, splices
// in optional pre-rendered markup and an inlined JSON data block, and writes
// the merged document. Targets describe one template-to-output build and can
// be loaded from a YAML or JSON config file.
package site
