package coverio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jmapper/nerve"
)

// Sentinel errors for cover and report I/O.
var (
	// ErrDecode is returned for a document that is not a cover mapping.
	ErrDecode = errors.New("coverio: cannot decode cover")

	// ErrOutputExists is returned when a report would overwrite a file
	// and force is not set.
	ErrOutputExists = errors.New("coverio: output file exists")
)

// clustersKey names the optional wrapping key of a cover document.
const clustersKey = "clusters"

// ReadCover decodes a cover from r.
func ReadCover(r io.Reader) (nerve.Cover, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrDecode)
	}
	// A single "clusters" key holding a mapping is the wrapped form.
	if len(root.Content) == 2 && root.Content[0].Value == clustersKey && root.Content[1].Kind == yaml.MappingNode {
		root = root.Content[1]
	}

	var cover nerve.Cover
	if err := root.Decode(&cover); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return cover, nil
}

// ReadCoverFile opens path and decodes a cover from it.
func ReadCoverFile(path string) (nerve.Cover, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cover, err := ReadCover(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cover, nil
}
