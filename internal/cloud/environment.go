package cloud

import "errors"

// Environment identifies a platform deployment. Both organizations must
// live in the same deployment; the environment selects the API roots for
// the V1 and V2 platforms.
type Environment string

const (
	EnvDev   Environment = "dev"
	EnvQA    Environment = "qa"
	EnvProd  Environment = "prod"
	EnvHIPAA Environment = "hipaa"
)

// ErrUnknownEnvironment indicates an environment name outside the known
// deployment set.
var ErrUnknownEnvironment = errors.New("unknown environment")

type endpoints struct {
	v1 string
	v2 string
}

var environmentEndpoints = map[Environment]endpoints{
	EnvDev:   {v1: "https://platformdev.cloud.search.com/rest/search/v1", v2: "https://platformdev.cloud.search.com/rest/organizations"},
	EnvQA:    {v1: "https://platformqa.cloud.search.com/rest/search/v1", v2: "https://platformqa.cloud.search.com/rest/organizations"},
	EnvProd:  {v1: "https://platform.cloud.search.com/rest/search/v1", v2: "https://platform.cloud.search.com/rest/organizations"},
	EnvHIPAA: {v1: "https://platformhipaa.cloud.search.com/rest/search/v1", v2: "https://platformhipaa.cloud.search.com/rest/organizations"},
}

// BaseURLs returns the V1 and V2 API roots for the given environment.
func BaseURLs(env Environment) (v1 string, v2 string, err error) {
	ep, ok := environmentEndpoints[env]
	if !ok {
		return "", "", ErrUnknownEnvironment
	}
	return ep.v1, ep.v2, nil
}

// KnownEnvironments lists the valid environment names for validation and
// help text.
func KnownEnvironments() []Environment {
	return []Environment{EnvDev, EnvQA, EnvProd, EnvHIPAA}
}
