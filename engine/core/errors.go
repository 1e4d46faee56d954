package core

import (
	"errors"
)

var (
	ErrAllocation            = errors.New("gpu object allocation failed")
	ErrShaderCompile         = errors.New("shader compilation failed")
	ErrProgramLink           = errors.New("program link failed")
	ErrFramebufferIncomplete = errors.New("framebuffer incomplete")
	ErrDuplicateName         = errors.New("name already registered")
	ErrEmptyRegistry         = errors.New("no entries registered")
	ErrNotFound              = errors.New("not found")
	ErrNotRestored           = errors.New("instance was never restored")
	ErrUnknown               = errors.New("unknown")
)
