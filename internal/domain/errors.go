package domain

import (
	"fmt"
	"time"
)

type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e SourceUnavailableError) Error() string {
	return fmt.Sprintf("statistics source %s: %v", e.Path, e.Err)
}

func (e SourceUnavailableError) Unwrap() error {
	return e.Err
}

type MalformedLineError struct {
	Field string
	Line  string
	Err   error
}

func (e MalformedLineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed statistics line %q: %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed statistics line %q: missing %s", e.Line, e.Field)
}

func (e MalformedLineError) Unwrap() error {
	return e.Err
}

type CorruptStoreError struct {
	Path string
	Err  error
}

func (e CorruptStoreError) Error() string {
	return fmt.Sprintf("history file %s is unreadable or invalid: %v", e.Path, e.Err)
}

func (e CorruptStoreError) Unwrap() error {
	return e.Err
}

type StoreWriteError struct {
	Path string
	Err  error
}

func (e StoreWriteError) Error() string {
	return fmt.Sprintf("write history file %s: %v", e.Path, e.Err)
}

func (e StoreWriteError) Unwrap() error {
	return e.Err
}

type NegativeIntervalError struct {
	Interval time.Duration
}

func (e NegativeIntervalError) Error() string {
	return fmt.Sprintf("interval between snapshots is negative (%s)", e.Interval)
}
