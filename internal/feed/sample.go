package feed

import (
	_ "embed"
)

//go:embed sample_projects.json
var sampleData []byte

// Sample returns the bundled demo feed
func Sample() (*Feed, error) {
	return Parse(sampleData)
}
