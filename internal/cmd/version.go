package cmd

import (
	"fmt"

	"github.com/renato0307/hiit/internal/version"
)

// VersionCmd prints version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run() error {
	fmt.Println(version.Info())
	return nil
}
