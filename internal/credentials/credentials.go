// Package credentials resolves the account password KubeBlocks
// generates alongside a cluster.
//
// Secrets are created synchronously with the cluster, so resolution is
// a single fetch with no retry.
package credentials

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/imamik/fdb/internal/errdefs"
	"github.com/imamik/fdb/internal/runner"
	"github.com/imamik/fdb/internal/service"
)

// Credential is the account identity for a cluster. Nil is returned
// for services without generated credentials.
type Credential struct {
	Username string
	Password string
}

// Resolver fetches and decodes account secrets via kubectl.
type Resolver struct {
	Kubectl    string
	Kubeconfig string
	Namespace  string
	Runner     runner.Runner
}

// NewResolver returns a Resolver.
func NewResolver(kubectl, kubeconfig, namespace string, r runner.Runner) *Resolver {
	return &Resolver{
		Kubectl:    kubectl,
		Kubeconfig: kubeconfig,
		Namespace:  namespace,
		Runner:     r,
	}
}

// Resolve returns the credential for a cluster, or nil for services
// that have none. The password field arrives base64-encoded under
// .data.password and is decoded in process.
func (r *Resolver) Resolve(ctx context.Context, svc service.Type, clusterName string) (*Credential, error) {
	if !svc.HasCredentials() {
		return nil, nil
	}

	secretName := svc.SecretName(clusterName)
	args := []string{
		"--kubeconfig", r.Kubeconfig,
		"get", "secret", secretName,
		"-n", r.Namespace,
		"-o", "jsonpath={.data.password}",
	}
	result, err := r.Runner.Run(ctx, r.Kubectl, args...)
	if err != nil {
		return nil, errdefs.NewToolError(r.Kubectl, args, result.Stderr, err)
	}

	password, err := decodePassword(result.Stdout, secretName)
	if err != nil {
		return nil, err
	}

	return &Credential{
		Username: svc.DefaultUser(),
		Password: password,
	}, nil
}

// decodePassword decodes the base64 payload of a secret field and
// verifies the plaintext is text.
func decodePassword(payload, secretName string) (string, error) {
	trimmed := strings.TrimSpace(payload)
	decoded, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: secret %s has malformed base64 password: %v", errdefs.ErrDecode, secretName, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: secret %s password is not valid text", errdefs.ErrDecode, secretName)
	}
	return string(decoded), nil
}
