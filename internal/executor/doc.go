// Package executor runs a resolved recipe order strictly sequentially.
// Each action line is a single external process whose output is passed
// through unmodified; the first non-zero exit halts the whole invocation.
package executor
