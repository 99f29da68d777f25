// Package domain contains the core types of the survey-translation
// pipeline: survey documents, locale keys, translation-map
// classification, validation issues, and the configuration structs
// passed explicitly into every service.
//
// The domain has no knowledge of files, commands, or remote sources.
// Those live behind the ports in internal/core/ports.
package domain
