package metrics

const (
	OUTCOME_SUCCESS = "success"
	OUTCOME_FAILURE = "failure"
)

var Deployments = NewCounter("deployments_total", "Total deploy operations by outcome", []string{"outcome"})
var StepFailures = NewCounter("step_failures_total", "Total failed deploy steps", []string{"step"})
var Rollbacks = NewCounter("rollbacks_total", "Total rollbacks of partially deployed containers", []string{"outcome"})
var Teardowns = NewCounter("teardowns_total", "Total kill or stop operations by outcome", []string{"operation", "outcome"})
var LiveContainers = NewGauge("live_containers", "Containers currently held by deployers", []string{})
var DeployDuration = NewHistogram("deploy_duration_seconds", "Duration of deploy operations", DeployBuckets, []string{"outcome"})
