/*
Package cli provides command-line utilities shared by the wallsweep command.

Error Types:

The cli package defines the error types the command maps to exit status 1: a
configuration problem or a target directory that does not exist.

	if _, err := os.Stat(dir); err != nil {
		return &cli.DirectoryError{Path: dir}
	}

Signal Handling:

SetupSignalHandler returns a context canceled on SIGINT/SIGTERM; the cleanup
loop checks it between files so an interrupt aborts the run at the next safe
point:

	ctx := cli.SetupSignalHandler()
	deleted, err := cleaner.Run(ctx)
*/
package cli
