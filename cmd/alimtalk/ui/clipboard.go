package ui

import "github.com/atotto/clipboard"

// clipboardWriteAll is a package-level variable to allow mocking in
// tests, and so clipboard failures degrade gracefully: the rendered
// message stays visible on screen for manual copying.
var clipboardWriteAll = clipboard.WriteAll
