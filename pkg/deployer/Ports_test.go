package deployer

import (
	"strconv"
	"testing"

	"github.com/simplecontainer/deployer/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestRemap(t *testing.T) {
	type Wanted struct {
		ports map[string][]HostBinding
		err   error
	}

	type Parameters struct {
		reported map[string][]engine.Binding
		interest []string
	}

	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Single binding",
			Wanted{
				ports: map[string][]HostBinding{"9042/tcp": {{HostIP: "0.0.0.0", HostPort: 32768}}},
			},
			Parameters{
				reported: map[string][]engine.Binding{"9042/tcp": {{HostIP: "0.0.0.0", HostPort: "32768"}}},
				interest: []string{"9042/tcp"},
			},
		},
		{
			"Binding per interface",
			Wanted{
				ports: map[string][]HostBinding{"9042/tcp": {{HostIP: "0.0.0.0", HostPort: 32768}, {HostIP: "::", HostPort: 32769}}},
			},
			Parameters{
				reported: map[string][]engine.Binding{
					"9042/tcp": {{HostIP: "0.0.0.0", HostPort: "32768"}, {HostIP: "::", HostPort: "32769"}},
					"7000/tcp": {{HostIP: "0.0.0.0", HostPort: "32770"}},
				},
				interest: []string{"9042/tcp"},
			},
		},
		{
			"Nothing of interest",
			Wanted{
				ports: map[string][]HostBinding{},
			},
			Parameters{
				reported: nil,
				interest: nil,
			},
		},
		{
			"No port mapping",
			Wanted{
				err: ERROR_NO_PORT_MAPPING,
			},
			Parameters{
				reported: nil,
				interest: []string{"9042/tcp"},
			},
		},
		{
			"Missing binding",
			Wanted{
				err: ERROR_MISSING_PORT_BINDING,
			},
			Parameters{
				reported: map[string][]engine.Binding{"7000/tcp": {{HostIP: "0.0.0.0", HostPort: "32770"}}},
				interest: []string{"9042/tcp"},
			},
		},
		{
			"Empty binding list",
			Wanted{
				err: ERROR_MISSING_PORT_BINDING,
			},
			Parameters{
				reported: map[string][]engine.Binding{"9042/tcp": {}},
				interest: []string{"9042/tcp"},
			},
		},
		{
			"Host port is not a number",
			Wanted{
				err: strconv.ErrSyntax,
			},
			Parameters{
				reported: map[string][]engine.Binding{"9042/tcp": {{HostIP: "0.0.0.0", HostPort: "cql"}}},
				interest: []string{"9042/tcp"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ports, err := Remap("c1", tc.parameters.reported, tc.parameters.interest)

			if tc.wanted.err != nil {
				var portError *PortError

				assert.ErrorIs(t, err, tc.wanted.err)
				assert.ErrorAs(t, err, &portError)
				assert.Equal(t, "c1", portError.ContainerID)
				assert.Nil(t, ports)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.wanted.ports, ports)
		})
	}
}
