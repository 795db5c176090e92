package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("environment", "e", "", "Deployment environment: dev, qa, prod, or hipaa")
	flags.String("v1-org-id", "", "Source (V1) organization id")
	flags.String("v1-access-token", "", "Source (V1) organization access token")
	flags.String("v2-org-id", "", "Target (V2) organization id")
	flags.String("v2-access-token", "", "Target (V2) organization access token")
	flags.Duration("timeout", 0, "Per-request HTTP timeout")
	flags.Bool("dry-run", false, "Report every decision without writing to the target organization")
}
