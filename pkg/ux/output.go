// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
)

var Logger *UserLog

type UserLog struct {
	writer io.Writer
}

// NewUserLog installs the process wide user logger writing to [userwriter].
func NewUserLog(userwriter io.Writer) *UserLog {
	Logger = &UserLog{
		writer: userwriter,
	}
	return Logger
}

// PrintToUser prints msg directly to stdout (command output)
// Does NOT log to avoid duplication - logs should go to stderr separately
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
}

// PrintError prints a visible error message with ERROR prefix to [w]
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "\nERROR: %s\n", err)
}

// DefaultTable creates a table writing to the user output with the given headers
func (ul *UserLog) DefaultTable(headers ...string) *tablewriter.Table {
	w := ul.writer
	if w == nil {
		w = os.Stdout
	}
	table := tablewriter.NewWriter(w)
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	return table
}
