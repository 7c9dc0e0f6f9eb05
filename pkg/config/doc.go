// Package config loads the root project's scaffold configuration from its
// descriptor file. The pipeline treats the resulting Options value as
// already-validated input; the only validation deferred to the pipeline is
// the mandatory web-root location, which is a resolution-time concern.
package config
