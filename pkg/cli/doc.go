/*
Package cli provides command-line interface utilities for nodeclass.

The cli package includes output formatters, error types, and signal handling
used by the nodeclass command.

Output Formatting:

Commands print results as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, steps); err != nil {
		return err
	}

A []string passed to the text formatter is printed one element per line.

Signal Handling:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
