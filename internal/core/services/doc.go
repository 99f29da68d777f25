// Package services implements the driving ports: the translation-node
// classifier and validator at the centre of the pipeline, plus the
// surrounding maintenance operations (normalise, pull, split, prune,
// deploy).
package services
