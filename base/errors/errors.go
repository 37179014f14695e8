// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers, extending
// the standard library errors package with slog-logging versions that
// return what they are given, so they can be used inline.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error that formats as the given text.
// It is a direct wrapper of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is a direct wrapper of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors.
// It is a direct wrapper of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log takes the given error and logs it if it is non-nil, returning
// it either way, adding the file and line of the caller.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error if it is
// non-nil, returning the value either way. It is useful for wrapping
// two-return-value functions inline.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Ignore1 ignores the error and returns only the value. It should be
// used sparingly, where the error is genuinely impossible or irrelevant.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file and line of the calling function two
// levels up, for logging context.
func CallerInfo() string {
	_, file, line, _ := runtime.Caller(2)
	return file + ":" + strconv.Itoa(line)
}
