// Package flagx lets several independent flag sets share one command line.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// Split partitions args into the flags named in known (with their values)
// and everything else, keeping the relative order of both. A known flag is
// either "-name=value" or "-name" followed by a value that does not start
// with "-".
func Split(args []string, known []string) (flags, rest []string) {
	names := make(map[string]bool, len(known))
	for _, f := range known {
		names[f] = true
	}

	flags = []string{}
	rest = []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if names[name] {
				flags = append(flags, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if !names[arg] {
			rest = append(rest, arg)
			continue
		}
		flags = append(flags, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, rest
}

// FilterArgs returns only the known flags of args.
func FilterArgs(args []string, known []string) []string {
	flags, _ := Split(args, known)
	return flags
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present.
func JsonConfigFlags() string {
	var value string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&value, "c", "", "")
	fs.StringVar(&value, "config", "", "")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return value
}
