// Package catalog builds project skeletons. A Project turns a manifest
// into a directory tree of generated files (gitignore, package lists,
// Makefile, editor config), and registered modules extend that tree
// with language or framework specific scaffolding. Modules reach into
// shared hook nodes on the Project, so several modules can grow the
// same file.
package catalog
