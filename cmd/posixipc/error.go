package main

import "errors"

// errUsage occurs when the program was invoked with an unknown command or
// invalid arguments.
var errUsage = errors.New("invalid usage")
