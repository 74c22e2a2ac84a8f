// Package output provides structured output handling for the dayone CLI.
//
// Commands print through a Printer so that the same command works for a
// person at a terminal and for a script reading JSON:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Entry saved", "id": e.ID()})
//	printer.Error(err)
//
// # Debug notices
//
// Debugf writes dim progress lines to the error writer. It is the side
// channel used by entries created with debug enabled and is silent in JSON
// mode.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Validation error (bad id, incomplete location, bad flags)
//	output.ExitSystemError // 2: I/O error (template missing, directory not writable)
//
// Errors from other packages can carry their own code by implementing
// ExitCoder; GetExitCode honours it.
package output
