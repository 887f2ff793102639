package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/simplecontainer/deployer/pkg/deployer"
	"github.com/simplecontainer/deployer/pkg/deployment"
	"github.com/simplecontainer/deployer/pkg/engine/docker"
	"github.com/simplecontainer/deployer/pkg/formaters"
	"github.com/simplecontainer/deployer/pkg/image"
	"github.com/simplecontainer/deployer/pkg/logger"
	"github.com/simplecontainer/deployer/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func NewDeployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy IMAGE[:TAG]",
		Short: "Deploy an image and print the host ports it was published on",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeploy,
	}

	flags := cmd.Flags()
	flags.String("name", "", "Container name")
	flags.StringArrayP("env", "e", nil, "Environment variable NAME=VALUE")
	flags.StringArrayP("volume", "v", nil, "Volume binding hostPath:containerPath")
	flags.StringArrayP("port", "p", nil, "Port binding [hostPort:]port/proto")
	flags.StringArray("expose", nil, "Port the image exposes, port/proto")
	flags.Bool("publish-all", false, "Publish every exposed port on a random host port")
	flags.String("cmd", "", "Command line to run instead of the image default")
	flags.Int64("memory", 0, "Memory limit in bytes")
	flags.Int64("swap", -1, "Swap on top of the memory limit in bytes, negative for unlimited")
	flags.String("network", "", "Network mode")
	flags.StringArrayP("label", "l", nil, "Label key=value")
	flags.Bool("wait", false, "Wait until the container stops running")
	flags.Duration("poll", static.DEFAULT_POLL_INTERVAL, "Interval between state checks with --wait")
	flags.Bool("rm", false, "Stop and remove the container before exiting")
	flags.Int("grace", static.DEFAULT_STOP_GRACE, "Seconds the container gets to stop with --rm before it is killed")
	flags.StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runDeploy(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	config, err := loadConfiguration()

	if err != nil {
		return err
	}

	endpoint, err := selectEndpoint(config)

	if err != nil {
		return err
	}

	parsed, err := image.Parse(args[0])

	if err != nil {
		return err
	}

	registry := parsed.Registry
	if _, local := registry.(image.LocalRegistry); local {
		registry = config.Registry
	}

	img := image.NewBuilder(registry, parsed.Repository, parsed.Name, nil, config.Overrides).ForTag(parsed.Tag)

	spec, err := deploymentFromFlags(flags)

	if err != nil {
		return err
	}

	d := deployer.New(endpoint, docker.New(endpoint, logger.Log), logger.Log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	remove, _ := flags.GetBool("rm")
	containerID := ""

	defer func() {
		var closeErr error

		if remove {
			if container := d.Find(containerID); container != nil {
				grace, _ := flags.GetInt("grace")

				if _, err := d.Stop(context.WithoutCancel(ctx), container, grace); err != nil {
					logger.Log.Warn("graceful stop failed, killing", zap.String("container", containerID), zap.Error(err))
				}
			}

			closeErr = d.Close()
		} else {
			closeErr = d.Engine.Close()
		}

		if closeErr != nil {
			logger.Log.Warn("closing engine connection failed", zap.Error(closeErr))
		}
	}()

	container, err := d.Deploy(ctx, img, spec)

	if err != nil {
		return err
	}

	containerID = container.ID

	output, _ := flags.GetString("output")

	switch output {
	case "json":
		bytes, err := container.ToJson()

		if err != nil {
			return err
		}

		fmt.Println(string(bytes))
	default:
		formaters.Containers(os.Stdout, []*deployer.Container{container})
	}

	if wait, _ := flags.GetBool("wait"); wait {
		poll, _ := flags.GetDuration("poll")

		state, err := d.Watch(ctx, container, poll)

		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		if err == nil {
			formaters.State(os.Stdout, container, state)
		}
	}

	return nil
}

func deploymentFromFlags(flags *pflag.FlagSet) (*deployment.Deployment, error) {
	spec := deployment.New()

	if name, _ := flags.GetString("name"); name != "" {
		spec.Name(name)
	}

	env, _ := flags.GetStringArray("env")
	spec.Env(env...)

	volumes, _ := flags.GetStringArray("volume")
	spec.Volumes(volumes...)

	ports, _ := flags.GetStringArray("port")
	for _, port := range ports {
		hostPort := 0
		portSpec := port

		if host, container, found := strings.Cut(port, ":"); found {
			parsed, err := strconv.Atoi(host)

			if err != nil {
				return nil, fmt.Errorf("invalid host port in %q: %w", port, err)
			}

			hostPort, portSpec = parsed, container
		}

		spec.Port(portSpec, hostPort)
	}

	exposed, _ := flags.GetStringArray("expose")
	for _, port := range exposed {
		spec.ExposedPort(port)
	}

	if flags.Changed("publish-all") {
		publishAll, _ := flags.GetBool("publish-all")
		spec.PublishAllPorts(publishAll)
	}

	if line, _ := flags.GetString("cmd"); line != "" {
		spec.CommandLine(line)
	}

	if memory, _ := flags.GetInt64("memory"); memory > 0 {
		swap, _ := flags.GetInt64("swap")
		spec.Memory(memory, swap)
	}

	if network, _ := flags.GetString("network"); network != "" {
		spec.NetworkMode(network)
	}

	labels, _ := flags.GetStringArray("label")
	for _, label := range labels {
		key, value, _ := strings.Cut(label, "=")
		spec.Label(key, value)
	}

	return spec, nil
}
