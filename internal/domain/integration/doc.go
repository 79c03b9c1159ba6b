// Package integration holds the domain model of the jobs-board integration
// bridge: the source-system aggregates (Employer, Job, ExpressionOfInterest),
// the external-ID mappings that record which entities have been registered
// with the downstream MN system, the reference-data translation contract, and
// the gateway ports to both external APIs.
package integration
