// Package buildinfo is stamped at link time:
//
//	go build -ldflags "-X github.com/aalvaropc/bankcore/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("bankcore %s (commit=%s, date=%s)", Version, Commit, Date)
}
