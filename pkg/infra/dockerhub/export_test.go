package dockerhub

// ParseDigest exposes parseDigest for tests.
var ParseDigest = parseDigest
