package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, build date, and other information about devappscraper.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("devappscraper %s\n", Version)
		fmt.Printf("  Go:         %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		if GitCommit != "unknown" && GitCommit != "" {
			fmt.Printf("  Commit:     %s\n", GitCommit)
		}
		if BuildDate != "unknown" && BuildDate != "" {
			fmt.Printf("  Built:      %s\n", BuildDate)
		}
		if mod, ok := moduleVersion(); ok {
			fmt.Printf("  Module:     %s\n", mod)
		}
	},
}

// moduleVersion reports the module's own build version as recorded by the
// Go toolchain, when this binary was built with module information (e.g.
// via `go install` rather than a manual ldflags build).
func moduleVersion() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "", false
	}
	return info.Main.Version, true
}
