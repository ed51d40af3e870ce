// Package connection assembles protocol-specific connection
// descriptors from host, port, and credentials.
package connection

import (
	"github.com/imamik/fdb/internal/credentials"
	"github.com/imamik/fdb/internal/service"
)

// Descriptor is the connection view printed after a successful create.
// Host, Port, and ConnectionString are empty when exposure was
// unavailable; the descriptor then degrades to credentials only
// rather than carrying a malformed URI.
type Descriptor struct {
	Host             string
	Port             int32
	User             string
	Password         string
	HasPassword      bool
	ConnectionString string
}

// Degraded reports whether the descriptor lacks a reachable endpoint.
func (d Descriptor) Degraded() bool {
	return d.Host == "" || d.Port == 0
}

// Assemble builds the descriptor for a service. cred may be nil for
// services without credentials.
func Assemble(svc service.Type, cred *credentials.Credential, host string, port int32) Descriptor {
	d := Descriptor{
		User: svc.DefaultUser(),
	}
	if cred != nil {
		d.User = cred.Username
		d.Password = cred.Password
		d.HasPassword = true
	}

	if host == "" || port == 0 {
		return d
	}

	d.Host = host
	d.Port = port
	d.ConnectionString = svc.ConnectionString(d.User, d.Password, host, port)
	return d
}
