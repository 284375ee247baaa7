package learngl

import "github.com/go-theft-auto/learngl/shaders"

// DefaultCatalog loads the catalogue embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(shaders.FS, ".")
}
