package config

import (
	"flag"
	"fmt"
)

// setCustomUsage configures the flag set with the tool's usage function.
// The text mirrors the behavior contract of the tool: frequency grammar,
// search modes, output routing and exit codes.
func setCustomUsage(fs *flag.FlagSet, programName string) {
	fs.Usage = func() {
		out := fs.Output()

		fmt.Fprintf(out, "Usage: %s f1 [f2] [options...]\n\n", programName)
		fmt.Fprintf(out, "Options:\n")
		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := "-" + f.Name
			if len(name) > 0 {
				flagSig += " " + name
			}
			fmt.Fprintf(out, "  %-18s %s", flagSig, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "0s" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %s)", f.DefValue)
			}
			fmt.Fprintln(out)
		})

		fmt.Fprintf(out, `
If only one frequency is specified, both outputs will be set to the
same frequency. Frequencies will be processed accurately as rational
numbers internally, and can also be specified as such. An integral
part can be separated from a fraction by either a single space or an
underscore. Suffixes 'M' and 'k' are supported for MHz and kHz.

'--all' and '--best' can be really slow as there may be millions
of possible solutions. By default, the code will look for a "good"
solution, which shouldn't be significantly slower than '--any'.
The "quality" of a solution is measured purely by means of the
phase detector comparison frequency (f3), which directly impacts
jitter/phase noise. '--best' will always search for the solution
with the highest possible f3. The default behaviour will accept
any f3 that is higher than 50%% of the maximum value.

Output for '--json' and '--cmdline' will always be exclusively
written to stdout, suitable for processing by other commands.
All other output will be written to stderr.

Examples:
  %[1]s 1000
  %[1]s 10M 96k
  %[1]s 1000.31 2345.61 --best
  %[1]s 10_1/7k 500/9k --all --verbose
  lb-gps-linux /dev/hidraw3 $(%[1]s 10M 120M --cmdline)

Exit status:
  0: successful completion
  1: could not find any solution for the specified frequencies
  2: input processing error

`, programName)
	}
}
