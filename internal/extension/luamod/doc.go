// Package luamod exposes the extension to Lua host scripts.
//
// The module is installed as a global table named "upcase" with four
// functions:
//
//	upcase.to_uppercase(s)  -- pure transform; errors unless s is a string
//	upcase.setup()          -- register the text.to_uppercase command
//	upcase.apply()          -- run the command against the bound buffer
//	upcase.line_count()     -- number of lines in the bound buffer
//
// Lua values arrive untyped, so to_uppercase enforces the textual-content
// contract at runtime; a non-string argument raises a Lua error whose
// message contains "requires a string".
package luamod
