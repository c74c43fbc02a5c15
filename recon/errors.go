package recon

import "errors"

var (
	errInvalidExtent = errors.New("output extent is empty")
	errEmptyExtent   = errors.New("orchestrator has no volume; call Reset after WithExtent")
	errKindMismatch  = errors.New("slice scalar kind does not match orchestrator output kind")
	errMaskMismatch  = errors.New("importance mask missing or does not match slice extent")
)
