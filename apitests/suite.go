package apitests

import (
	"github.com/statusprobe/backend-contract-tests/framework"
)

// Probe is one named entry of the suite.
type Probe struct {
	Name string
	Run  func(*T)
}

// AllProbes is the declared probe list, in the order in which probes run and are
// reported.
var AllProbes = []Probe{
	{Name: "Server Connectivity", Run: DoConnectivityTest},
	{Name: "API Endpoints", Run: DoEndpointTests},
	{Name: "MongoDB Connection", Run: DoPersistenceTest},
	{Name: "CORS Configuration", Run: DoCORSTest},
	{Name: "Error Handling", Run: DoErrorHandlingTests},
}

// RunTestSuite runs AllProbes against the service behind client.
func RunTestSuite(
	client *Client,
	params SuiteParams,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return RunProbes(AllProbes, client, params, filter, testLogger)
}

// RunProbes runs each probe in order, one at a time. The result log always has one
// record per probe.
func RunProbes(
	probes []Probe,
	client *Client,
	params SuiteParams,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, p := range probes {
			run := p.Run
			c.Run(p.Name, func(c1 *framework.Context) {
				run(newT(c1, client, params))
			})
		}
	})
}
