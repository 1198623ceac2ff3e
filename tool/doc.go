// Package tool implements the interactive drawing tools: the
// polygon-closing path tool state machine and the registry of tool
// metadata the editor chrome reads cursors and categories from.
package tool
