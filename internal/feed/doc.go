package feed

// Package feed decodes discovery feed payloads into model values and bundles
// the sample feed the demo host runs on.
