// Package initializer prepares a module root for the pipeline: it locates or
// creates the project descriptor and guarantees the configuration document
// exists.
//
// Initialization is idempotent. An existing configuration is never touched,
// and the only side effects are file creations in the module root.
package initializer
