package main

const (
	flagHelp      = "--help"
	flagHelpShort = "-h"
	flagDebug     = "--debug"
)

// invocation is the result of splitting the raw command line.
type invocation struct {
	Help  bool
	Debug bool
	// Forward holds the arguments passed to the installer script, in order.
	Forward []string
}

// parseArgs recognizes the wrapper's own flags anywhere in args.
// Help and debug flags are consumed; all other arguments, including unknown flags, are forwarded.
func parseArgs(args []string) invocation {
	inv := invocation{Forward: []string{}}
	for _, arg := range args {
		switch arg {
		case flagHelp, flagHelpShort:
			inv.Help = true
		case flagDebug:
			inv.Debug = true
		default:
			inv.Forward = append(inv.Forward, arg)
		}
	}
	return inv
}
