// Package flagx contains small helpers on top of the standard flag package:
// argument filtering so several components can parse their own flag subsets
// from the same command line, and a repeatable string-list flag value.
package flagx

import "strings"

// FilterArgs returns only the arguments that belong to the allowed flags,
// keeping each flag's value (whether given as "-f value" or "-f=value").
// Unknown flags and their values are dropped, so a FlagSet parsing the result
// never trips over arguments meant for another component.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-f=value" form
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// "-f value" form: take the next argument as the value unless it
		// looks like another flag
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
