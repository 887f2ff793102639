package docker

import (
	"context"
	"io"
	"strings"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/jsonmessage"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/simplecontainer/deployer/pkg/engine"
	"go.uber.org/zap"
)

// IsImagePresent reports whether any locally cached tag resolves to reference.
func (docker *Docker) IsImagePresent(ctx context.Context, reference string) (bool, error) {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return false, err
	}

	images, err := cli.ImageList(ctx, image.ListOptions{})

	if err != nil {
		return false, errors.Wrap(err, "list images")
	}

	wanted := normalizeReference(reference)

	for _, summary := range images {
		for _, tag := range summary.RepoTags {
			if normalizeReference(tag) == wanted {
				return true, nil
			}
		}
	}

	return false, nil
}

// Pull streams the progress messages of the engine. The channel is closed
// once the engine finishes or ctx is cancelled.
func (docker *Docker) Pull(ctx context.Context, reference string) (<-chan engine.Progress, error) {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return nil, err
	}

	reader, err := cli.ImagePull(ctx, reference, image.PullOptions{})

	if err != nil {
		return nil, errors.Wrapf(err, "pull image %s", reference)
	}

	progress := make(chan engine.Progress)

	go func() {
		defer close(progress)
		defer func(reader io.ReadCloser) {
			if err := reader.Close(); err != nil {
				docker.logger.Debug("closing pull stream failed", zap.Error(err))
			}
		}(reader)

		decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(reader)

		for {
			var message jsonmessage.JSONMessage

			err := decoder.Decode(&message)

			if err == io.EOF {
				return
			}

			event := toProgress(message)

			if err != nil {
				event = engine.Progress{Err: errors.Wrapf(err, "decode pull progress of %s", reference)}
			}

			select {
			case progress <- event:
			case <-ctx.Done():
				return
			}

			if event.Err != nil {
				return
			}
		}
	}()

	return progress, nil
}

func toProgress(message jsonmessage.JSONMessage) engine.Progress {
	event := engine.Progress{
		ID:     message.ID,
		Status: message.Status,
	}

	if message.Progress != nil {
		event.Progress = message.Progress.String()
	}

	if message.Error != nil {
		event.Err = message.Error
	} else if message.ErrorMessage != "" {
		event.Err = errors.New(message.ErrorMessage)
	}

	return event
}

// normalizeReference expands the implicit registry and tag so that
// "cassandra", "cassandra:latest" and "docker.io/library/cassandra:latest"
// compare equal.
func normalizeReference(reference string) string {
	registry, remote := "docker.io", reference

	parts := strings.SplitN(reference, "/", 2)
	if len(parts) == 2 && (strings.ContainsAny(parts[0], ".:") || parts[0] == "localhost") {
		registry, remote = parts[0], parts[1]
	}

	if registry == "docker.io" && !strings.Contains(remote, "/") {
		remote = "library/" + remote
	}

	if strings.LastIndex(remote, ":") <= strings.LastIndex(remote, "/") {
		remote += ":latest"
	}

	return registry + "/" + remote
}
