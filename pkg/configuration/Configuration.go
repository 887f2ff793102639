package configuration

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/simplecontainer/deployer/pkg/image"
	"github.com/simplecontainer/deployer/pkg/static"
	"gopkg.in/yaml.v3"
)

// Locate finds the configuration document. A .env file in the working
// directory is loaded first so it can point DEPLOYER_CONFIG_FILE elsewhere.
func Locate() (string, error) {
	if _, err := os.Stat(static.DEFAULT_DOTENV); err == nil {
		if err = godotenv.Load(static.DEFAULT_DOTENV); err != nil {
			return "", err
		}
	}

	if path := os.Getenv(static.ENV_CONFIG_FILE); path != "" {
		return path, nil
	}

	for _, candidate := range []string{static.DEFAULT_CONFIG_YAML, static.DEFAULT_CONFIG_PROPS} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	wd, _ := os.Getwd()

	return "", fmt.Errorf("%w: place %s or %s in %s, or point %s at the file",
		ERROR_CONFIG_NOT_FOUND, static.DEFAULT_CONFIG_YAML, static.DEFAULT_CONFIG_PROPS, wd, static.ENV_CONFIG_FILE)
}

// Load parses the file at path, the format follows the file extension.
func Load(path string) (*Configuration, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Parse(file, static.CONFIG_TYPE_YAML)
	case ".properties", ".props":
		return Parse(file, static.CONFIG_TYPE_PROPERTIES)
	default:
		return nil, fmt.Errorf("%w: %s", ERROR_UNKNOWN_FORMAT, path)
	}
}

func Parse(reader io.Reader, format string) (*Configuration, error) {
	switch format {
	case static.CONFIG_TYPE_YAML:
		return ParseYAML(reader)
	case static.CONFIG_TYPE_PROPERTIES:
		return ParseProperties(reader)
	default:
		return nil, fmt.Errorf("%w: %s", ERROR_UNKNOWN_FORMAT, format)
	}
}

// ParseYAML keeps scalars as written so override tags like 3.0 or 2.10 and
// mixed case keys survive decoding.
func ParseYAML(reader io.Reader) (*Configuration, error) {
	raw := rawDocument{}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	err := decoder.Decode(&raw)

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	config := &Configuration{
		Endpoints: make([]Endpoint, 0, len(raw.Api)),
		Registry:  image.LocalRegistry{},
		Overrides: make([]image.TagOverride, 0),
	}

	for i, api := range raw.Api {
		id := api.Id
		if id == "" {
			id = fmt.Sprintf("api-%d", i)
		}

		var endpoint Endpoint
		endpoint, err = NewEndpoint(strings.ToLower(api.Type), id, api.Host, api.Port, api.Cert, api.Path, api.Volumes)

		if err != nil {
			return nil, err
		}

		config.Endpoints = append(config.Endpoints, endpoint)
	}

	if raw.Registry != nil {
		if raw.Registry.Host == "" || raw.Registry.Port == 0 {
			return nil, ERROR_INCOMPLETE_REGISTRY
		}

		config.Registry = image.RemoteRegistry{Host: raw.Registry.Host, Port: raw.Registry.Port}
	}

	for _, entry := range raw.Override {
		keys := make([]string, 0, len(entry))
		for key := range entry {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			var override image.TagOverride
			override, err = parseOverride(key, entry[key])

			if err != nil {
				return nil, err
			}

			config.Overrides = append(config.Overrides, override)
		}
	}

	return config, config.check()
}

// ParseProperties reads api.<id>.<attr>, registry.<attr> and
// tag.[<repository>.]<name>.<tag> keys. Attribute names are case insensitive,
// ids and override keys keep their case.
func ParseProperties(reader io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(reader)

	if err != nil {
		return nil, err
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

	var props *properties.Properties
	props, err = loader.LoadBytes(data)

	if err != nil {
		return nil, err
	}

	keys := props.Keys()
	sort.Strings(keys)

	apis := make(map[string]map[string]string)
	registry := make(map[string]string)

	config := &Configuration{
		Endpoints: make([]Endpoint, 0),
		Registry:  image.LocalRegistry{},
		Overrides: make([]image.TagOverride, 0),
	}

	for _, key := range keys {
		value := strings.TrimSpace(props.GetString(key, ""))
		parts := strings.Split(key, ".")

		switch strings.ToLower(parts[0]) {
		case "api":
			if len(parts) < 3 {
				continue
			}

			if apis[parts[1]] == nil {
				apis[parts[1]] = make(map[string]string)
			}

			apis[parts[1]][strings.ToLower(parts[2])] = value
		case "registry":
			if len(parts) == 2 {
				registry[strings.ToLower(parts[1])] = value
			}
		case "tag":
			var override image.TagOverride
			override, err = parseOverride(strings.Join(parts[1:], "."), value)

			if err != nil {
				return nil, err
			}

			config.Overrides = append(config.Overrides, override)
		}
	}

	ids := make([]string, 0, len(apis))
	for id := range apis {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		attributes := apis[id]

		port := 0
		if attributes["port"] != "" {
			port, err = strconv.Atoi(attributes["port"])

			if err != nil {
				return nil, fmt.Errorf("invalid port for api %q: %w", id, err)
			}
		}

		var volumes []string
		if attributes["volumebindings"] != "" {
			for _, binding := range strings.Split(attributes["volumebindings"], ";") {
				if binding = strings.TrimSpace(binding); binding != "" {
					volumes = append(volumes, binding)
				}
			}
		}

		var endpoint Endpoint
		endpoint, err = NewEndpoint(strings.ToLower(attributes["type"]), id, attributes["host"], port, attributes["cert"], attributes["path"], volumes)

		if err != nil {
			return nil, err
		}

		config.Endpoints = append(config.Endpoints, endpoint)
	}

	if registry["host"] != "" && registry["port"] != "" {
		port, err := strconv.Atoi(registry["port"])

		if err != nil {
			return nil, fmt.Errorf("invalid registry port: %w", err)
		}

		config.Registry = image.RemoteRegistry{Host: registry["host"], Port: port}
	}

	return config, config.check()
}

func parseOverride(key string, value string) (image.TagOverride, error) {
	parts := strings.Split(key, ".")

	switch {
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return image.TagOverride{Name: parts[0], Tag: parts[1], Override: value}, nil
	case len(parts) >= 3:
		return image.TagOverride{Repository: parts[0], Name: parts[1], Tag: strings.Join(parts[2:], "."), Override: value}, nil
	default:
		return image.TagOverride{}, fmt.Errorf("%w: %q", ERROR_INVALID_OVERRIDE, key)
	}
}

func (config *Configuration) check() error {
	if len(config.Endpoints) == 0 {
		return ERROR_NO_ENDPOINTS
	}

	return nil
}

// Pick selects one of the configured endpoints at random.
func (config *Configuration) Pick() (Endpoint, error) {
	if len(config.Endpoints) == 0 {
		return nil, ERROR_NO_ENDPOINTS
	}

	return config.Endpoints[rand.IntN(len(config.Endpoints))], nil
}

func (config *Configuration) Find(id string) (Endpoint, bool) {
	for _, endpoint := range config.Endpoints {
		if endpoint.Identifier() == id {
			return endpoint, true
		}
	}

	return nil, false
}

func (config *Configuration) Images() *image.Images {
	return image.NewImages(config.Registry, config.Overrides)
}

// Marshal renders the configuration in the yaml shape ParseYAML accepts.
func (config *Configuration) Marshal() ([]byte, error) {
	doc := document{
		Api: make([]documentEndpoint, 0, len(config.Endpoints)),
	}

	for _, endpoint := range config.Endpoints {
		switch e := endpoint.(type) {
		case HttpEndpoint:
			doc.Api = append(doc.Api, documentEndpoint{Type: e.Kind(), Id: e.ID, Host: e.Host, Port: e.Port, Volumes: e.Volumes})
		case HttpsEndpoint:
			doc.Api = append(doc.Api, documentEndpoint{Type: e.Kind(), Id: e.ID, Host: e.Host, Port: e.Port, Cert: e.CertPath, Volumes: e.Volumes})
		case UnixEndpoint:
			doc.Api = append(doc.Api, documentEndpoint{Type: e.Kind(), Id: e.ID, Host: e.Host, Path: e.Path, Volumes: e.Volumes})
		}
	}

	if remote, ok := config.Registry.(image.RemoteRegistry); ok {
		doc.Registry = &remote
	}

	for _, override := range config.Overrides {
		key := fmt.Sprintf("%s.%s", override.Name, override.Tag)
		if override.Repository != "" {
			key = fmt.Sprintf("%s.%s", override.Repository, key)
		}

		doc.Override = append(doc.Override, map[string]string{key: override.Override})
	}

	return yaml.Marshal(doc)
}

func (config *Configuration) Save(path string) error {
	bytes, err := config.Marshal()

	if err != nil {
		return err
	}

	return os.WriteFile(path, bytes, 0644)
}
