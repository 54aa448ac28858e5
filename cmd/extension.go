package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
)

// RunExtension attempts to find and execute an external wp-<subcommand> binary.
// Global flags are passed as environment variables.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "wp-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log := newLogger()
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags resolved against the environment, as
// WP_* variables. The scenario path is made absolute so that extensions can
// change directory.
func extensionEnv() []string {
	path := scenarioPath()
	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return []string{
		EnvScenario + "=" + path,
		EnvCurrency + "=" + currencyCode(nil),
		EnvVerbose + "=" + strconv.FormatBool(verbose()),
	}
}
