package agents

import (
	"context"
	"sync"
)

// Handle identifies a remote hosted agent provisioned for a descriptor.
type Handle struct {
	// ID is the remote identifier of the hosted agent
	ID string
	// Endpoint is the base URL the agent is reachable at
	Endpoint string
}

// Provisioner ensures a remote hosted agent exists for a descriptor. Ensure
// is idempotent: calling it repeatedly for the same descriptor returns the
// same handle, provisioning at most once.
type Provisioner interface {
	Ensure(ctx context.Context, desc Descriptor) (Handle, error)
}

// ProvisionerFunc adapts a function to the Provisioner interface.
type ProvisionerFunc func(ctx context.Context, desc Descriptor) (Handle, error)

func (f ProvisionerFunc) Ensure(ctx context.Context, desc Descriptor) (Handle, error) {
	return f(ctx, desc)
}

// CachingProvisioner memoizes another Provisioner per descriptor name, so a
// hosted agent is provisioned once and reused across invocations.
// threadsafe
type CachingProvisioner struct {
	inner   Provisioner
	mtx     sync.Mutex
	handles map[string]Handle
}

var _ Provisioner = (*CachingProvisioner)(nil)

func NewCachingProvisioner(inner Provisioner) *CachingProvisioner {
	return &CachingProvisioner{
		inner:   inner,
		handles: make(map[string]Handle),
	}
}

func (p *CachingProvisioner) Ensure(ctx context.Context, desc Descriptor) (Handle, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if h, ok := p.handles[desc.Name]; ok {
		return h, nil
	}
	h, err := p.inner.Ensure(ctx, desc)
	if err != nil {
		return Handle{}, err
	}
	p.handles[desc.Name] = h
	return h, nil
}
