// Package loom generates project skeletons from yaml manifests. The
// heavy lifting lives in the subpackages (ir for the node trees, render
// for dialect-aware emission, dirbuild for the filesystem, catalog for
// the template modules); this package ties them together for callers
// that just want a project on disk.
package loom

import (
	"github.com/loomgen/go-loom/catalog"
	"github.com/loomgen/go-loom/dirbuild"
)

// Generate loads the manifest at manifestPath, applies the modules it
// lists and writes the project tree under destDir.
func Generate(manifestPath, destDir string, opts ...dirbuild.SyncOption) error {
	m, err := dirbuild.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	p := catalog.NewProject(m)
	if err := p.Apply(m.Mods...); err != nil {
		return err
	}
	return p.Sync(destDir, opts...)
}
