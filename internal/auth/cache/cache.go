// Package cache persists the provider's opaque token cache blobs outside
// process memory, keyed by the partition the provider asks for. The provider
// owns the blob format; stores only round-trip bytes.
package cache

import (
	"context"

	msalcache "github.com/AzureAD/microsoft-authentication-library-for-go/apps/cache"
)

// Store reads and writes opaque cache blobs.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Persister bridges a Store into the provider's export/replace contract.
type Persister struct {
	store Store
}

func NewPersister(store Store) *Persister {
	return &Persister{store: store}
}

// Replace loads the persisted blob into the provider cache before an
// operation. An empty store is not an error; the provider starts cold.
func (p *Persister) Replace(ctx context.Context, u msalcache.Unmarshaler, hints msalcache.ReplaceHints) error {
	data, err := p.store.Read(ctx, key(hints.PartitionKey))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return u.Unmarshal(data)
}

// Export writes the provider cache back out after an operation mutated it.
func (p *Persister) Export(ctx context.Context, m msalcache.Marshaler, hints msalcache.ExportHints) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	return p.store.Write(ctx, key(hints.PartitionKey), data)
}

func key(partition string) string {
	if partition == "" {
		partition = "default"
	}
	return "authbridge:tokencache:" + partition
}
