package types

import "github.com/m-mizutani/goerr/v2"

const (
	// ServiceName is the canonical name of this service
	ServiceName = "stevedore"

	// Version is the version of this service
	Version = "0.1.0"
)

// Error tags classify pipeline failures by the step that caused them
var (
	ErrTagConfig  = goerr.NewTag("config")
	ErrTagBuild   = goerr.NewTag("build")
	ErrTagRelease = goerr.NewTag("release")
	ErrTagUpload  = goerr.NewTag("upload")
)
